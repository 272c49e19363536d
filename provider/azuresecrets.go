package provider

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/lyraproj/provide/api"
)

// AzureSecrets is a lookup_key function that reads secrets from an Azure Key
// Vault. The vault is appointed by the required `vault_name` option and
// credentials are picked up from the environment. Key Vault secret names cannot
// contain underscores so underscores in the name are translated to dashes.
func AzureSecrets(ctx api.ProviderContext, name string) (any, bool) {
	vaultName, ok := ctx.StringOption(`vault_name`)
	if !ok {
		panic(api.MissingRequiredOption(`vault_name`))
	}
	client := secretsClient(ctx, vaultName)
	resp, err := client.GetSecret(ctx.Invocation(), strings.ReplaceAll(name, `_`, `-`), ``, nil)
	if err != nil || resp.Value == nil {
		return nil, false
	}
	return *resp.Value, true
}

func secretsClient(ctx api.ProviderContext, vaultName string) *azsecrets.Client {
	ck := `azure_key_vault::client::` + vaultName
	if c, ok := ctx.CachedValue(ck); ok {
		return c.(*azsecrets.Client)
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		panic(fmt.Errorf(`azure credentials: %s`, err))
	}
	client, err := azsecrets.NewClient(`https://`+vaultName+`.vault.azure.net`, cred, nil)
	if err != nil {
		panic(err)
	}
	ctx.Cache(ck, client)
	return client
}
