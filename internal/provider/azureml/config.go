package azureml

// Config contains the Azure Machine Learning workspace that hosts online endpoints.
type Config struct {
	SubscriptionID string `env:"AZURE_SUBSCRIPTION_ID"`
	ResourceGroup  string `env:"AZURE_RESOURCE_GROUP" envDefault:"rg-llm-endpoint"`
	Workspace      string `env:"AZURE_ML_WORKSPACE"   envDefault:"llm-endpoint-ml"`
}
