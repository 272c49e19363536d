// Package explain contains the explainer logic
package explain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lyraproj/provide/api"
)

type event string

const (
	found            = `found`
	locationNotFound = `location_not_found`
	notFound         = `not_found`
	result           = `result`
)

type explainNode interface {
	fmt.Stringer
	appendBranch(branch explainNode)
	appendText(text string)
	appendTo(w *indenter)
	found(name any, v any)
	locationNotFound()
	notFound(n any)
	parent() explainNode
	result(result any)
	setParent(p explainNode)
}

type explainTreeNode struct {
	p  explainNode
	bs []explainNode
	ts []string
	e  event
	v  any
	n  string
}

func nameToString(n any) string {
	switch n := n.(type) {
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case api.Name:
		return n.Source()
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprintf(`%v`, n)
	}
}

func toIndentedString(en explainNode) string {
	w := newIndenter(`  `)
	en.appendTo(w)
	return strings.TrimSpace(w.String())
}

func (en *explainTreeNode) appendTo(w *indenter) {
	en.dumpTexts(w)
}

func (en *explainTreeNode) appendBranch(branch explainNode) {
	en.bs = append(en.bs, branch)
}

func (en *explainTreeNode) appendText(text string) {
	en.ts = append(en.ts, text)
}

func (en *explainTreeNode) dumpOutcome(w *indenter) {
	switch en.e {
	case notFound:
		w.newLine()
		w.append(`No such name: "`)
		w.append(en.n)
		w.appendRune('"')
	case found:
		w.newLine()
		w.append(`Found name: "`)
		w.append(en.n)
		w.append(`" value: `)
		dumpValue(en.v, w)
	}
	en.dumpTexts(w)
}

func dumpValue(v any, w *indenter) {
	switch v := v.(type) {
	case string:
		w.appendRune('"')
		w.append(v)
		w.appendRune('"')
	case fmt.Stringer:
		w.append(v.String())
	default:
		if b, err := json.Marshal(v); err == nil {
			w.append(string(b))
		} else {
			w.append(fmt.Sprintf(`%v`, v))
		}
	}
}

func (en *explainTreeNode) dumpTexts(w *indenter) {
	for _, t := range en.ts {
		w.newLine()
		w.append(t)
	}
}

func (en *explainTreeNode) dumpBranches(w *indenter) {
	for _, b := range en.bs {
		b.appendTo(w)
	}
}

func (en *explainTreeNode) found(name any, v any) {
	en.n = nameToString(name)
	en.v = v
	en.e = found
}

func (en *explainTreeNode) locationNotFound() {
	en.e = locationNotFound
}

func (en *explainTreeNode) notFound(n any) {
	en.n = nameToString(n)
	en.e = notFound
}

func (en *explainTreeNode) result(v any) {
	en.v = v
	en.e = result
}

func (en *explainTreeNode) parent() explainNode {
	return en.p
}

func (en *explainTreeNode) setParent(p explainNode) {
	en.p = p
}

type explainDataProvider struct {
	explainTreeNode
	providerName string
}

func (en *explainDataProvider) appendTo(w *indenter) {
	w.newLine()
	w.append(en.providerName)
	w = w.indent()
	en.dumpBranches(w)
	en.dumpOutcome(w)
}

func (en *explainDataProvider) String() string {
	return toIndentedString(en)
}

type explainInterpolate struct {
	explainTreeNode
	expression string
}

func (en *explainInterpolate) appendTo(w *indenter) {
	w.newLine()
	w.append(`Interpolation on "`)
	w.append(en.expression)
	w.appendRune('"')
	en.dumpBranches(w.indent())
}

func (en *explainInterpolate) String() string {
	return toIndentedString(en)
}

type explainSegment struct {
	explainTreeNode
}

func (en *explainSegment) appendTo(w *indenter) {
	en.dumpOutcome(w)
}

func (en *explainSegment) String() string {
	return toIndentedString(en)
}

type explainLocation struct {
	explainTreeNode
	location api.Location
}

func (en *explainLocation) appendTo(w *indenter) {
	w.newLine()
	w.append(`Path "`)
	w.append(en.location.Resolved())
	w.appendRune('"')

	w = w.indent()
	w.newLine()
	w.append(`Original `)
	w.append(string(en.location.Kind()))
	w.append(`: "`)
	w.append(en.location.Original())
	w.appendRune('"')

	en.dumpBranches(w)
	if en.e == locationNotFound {
		w.newLine()
		w.append(string(en.location.Kind()))
		w.append(` not found`)
	}
	en.dumpOutcome(w)
}

func (en *explainLocation) String() string {
	return toIndentedString(en)
}

type explainLookup struct {
	explainTreeNode
}

func (en *explainLookup) appendTo(w *indenter) {
	if w.len() > 0 || w.level() > 0 {
		w.newLine()
	}
	w.append(`Searching for "`)
	w.append(en.n)
	w.appendRune('"')
	en.dumpBranches(w.indent())
}

func (en *explainLookup) String() string {
	return toIndentedString(en)
}

type explainMerge struct {
	explainTreeNode
	merge api.MergeStrategy
}

func (en *explainMerge) appendTo(w *indenter) {
	switch len(en.bs) {
	case 0:
		// No action
	case 1:
		en.bs[0].appendTo(w)
	default:
		w.newLine()
		w.append(`Merge strategy "`)
		w.append(en.merge.Label())
		w.appendRune('"')
		w = w.indent()
		if opts := en.merge.Options(); len(opts) > 0 {
			w.newLine()
			w.append(`Options: `)
			dumpValue(opts, w)
		}
		en.dumpBranches(w)
		if en.e == result {
			w.newLine()
			w.append(`Merged result: `)
			dumpValue(en.v, w)
		}
	}
}

func (en *explainMerge) String() string {
	return toIndentedString(en)
}

type explainMergeSource struct {
	explainTreeNode
	mergeSource string
}

func (en *explainMergeSource) appendTo(w *indenter) {
	w.newLine()
	w.append(`Using merge options from `)
	w.append(en.mergeSource)
}

func (en *explainMergeSource) String() string {
	return toIndentedString(en)
}

type explainSubLookup struct {
	explainTreeNode
	subName api.Name
}

func (en *explainSubLookup) appendTo(w *indenter) {
	w.newLine()
	w.append(`Sub name: "`)
	for i, s := range en.subName.Parts()[1:] {
		if i > 0 {
			w.appendRune('.')
		}
		w.append(nameToString(s))
	}
	w.appendRune('"')
	w = w.indent()
	en.dumpBranches(w)
	en.dumpOutcome(w)
}

func (en *explainSubLookup) String() string {
	return toIndentedString(en)
}

type explainer struct {
	explainTreeNode
	current explainNode
}

// NewExplainer creates a new Explainer instance.
func NewExplainer() api.Explainer {
	ex := &explainer{}
	ex.current = ex
	return ex
}

func (ex *explainer) AcceptFound(name any, value any) {
	ex.current.found(name, value)
}

func (ex *explainer) AcceptLocationNotFound() {
	ex.current.locationNotFound()
}

func (ex *explainer) AcceptMergeSource(mergeSource string) {
	en := &explainMergeSource{mergeSource: mergeSource}
	en.p = ex.current
	ex.current.appendBranch(en)
}

func (ex *explainer) AcceptNotFound(name any) {
	ex.current.notFound(name)
}

func (ex *explainer) AcceptMergeResult(value any) {
	ex.current.result(value)
}

func (ex *explainer) AcceptText(text string) {
	ex.current.appendText(text)
}

func (ex *explainer) push(en explainNode) {
	en.setParent(ex.current)
	ex.current.appendBranch(en)
	ex.current = en
}

func (ex *explainer) PushDataProvider(pvd api.DataProvider) {
	ex.push(&explainDataProvider{providerName: pvd.FullName()})
}

func (ex *explainer) PushInterpolation(expr string) {
	ex.push(&explainInterpolate{expression: expr})
}

func (ex *explainer) PushLocation(loc api.Location) {
	ex.push(&explainLocation{location: loc})
}

func (ex *explainer) PushLookup(req api.Request) {
	ex.push(&explainLookup{explainTreeNode{n: nameToString(req)}})
}

func (ex *explainer) PushMerge(mrg api.MergeStrategy) {
	ex.push(&explainMerge{merge: mrg})
}

func (ex *explainer) PushSegment(seg any) {
	ex.push(&explainSegment{})
}

func (ex *explainer) PushSubLookup(name api.Name) {
	ex.push(&explainSubLookup{subName: name})
}

func (ex *explainer) Pop() {
	if ex.current != nil {
		ex.current = ex.current.parent()
	}
}

func (ex *explainer) appendTo(w *indenter) {
	ex.dumpBranches(w)
	ex.dumpTexts(w)
}

func (ex *explainer) String() string {
	return toIndentedString(ex)
}
