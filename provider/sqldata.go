package provider

import (
	"database/sql"
	"fmt"

	"github.com/lyraproj/provide/api"
	"gopkg.in/yaml.v3"

	// The sqlite driver is always linked so that a plain provide.yaml can name it
	_ "modernc.org/sqlite"
)

// SQLData is a data_hash function that reads name - value pairs from a database
// table and returns them as a map. The required options are `dsn` and `table`.
// The `driver` option defaults to sqlite and the `key_column` and `value_column`
// options default to name and value. Values are parsed as yaml so that numbers,
// booleans, and structured values survive the round trip through the database.
func SQLData(ctx api.ProviderContext) map[string]any {
	dsn, ok := ctx.StringOption(`dsn`)
	if !ok {
		panic(api.MissingRequiredOption(`dsn`))
	}
	table, ok := ctx.StringOption(`table`)
	if !ok {
		panic(api.MissingRequiredOption(`table`))
	}
	driver := `sqlite`
	if d, ok := ctx.StringOption(`driver`); ok {
		driver = d
	}
	keyColumn := `name`
	if k, ok := ctx.StringOption(`key_column`); ok {
		keyColumn = k
	}
	valueColumn := `value`
	if v, ok := ctx.StringOption(`value_column`); ok {
		valueColumn = v
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		panic(err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx.Invocation(), fmt.Sprintf(`SELECT %s, %s FROM %s`, keyColumn, valueColumn, table))
	if err != nil {
		panic(err)
	}
	defer func() { _ = rows.Close() }()

	data := map[string]any{}
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			panic(err)
		}
		var pv any
		if err = yaml.Unmarshal([]byte(value), &pv); err != nil {
			pv = value
		}
		data[name] = pv
	}
	if err = rows.Err(); err != nil {
		panic(err)
	}
	return data
}
