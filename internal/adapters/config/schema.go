package config

// manifestDTO is the YAML shape of pynix.yaml.
type manifestDTO struct {
	Version       string            `yaml:"version"`
	Python        string            `yaml:"python"`
	Nixpkgs       pinDTO            `yaml:"nixpkgs"`
	PyPIFetcher   pinDTO            `yaml:"pypi_fetcher"`
	DisableChecks bool              `yaml:"disable_checks"`
	PreferNixpkgs *bool             `yaml:"prefer_nixpkgs"`
	IndexFile     string            `yaml:"index_file"`
	Environments  map[string]envDTO `yaml:"environments"`
}

type pinDTO struct {
	Rev    string `yaml:"rev"`
	SHA256 string `yaml:"sha256"`
}

type envDTO struct {
	Lockfile string `yaml:"lockfile"`
	Output   string `yaml:"output"`
}

// hclManifestDTO is the HCL shape of pynix.hcl.
type hclManifestDTO struct {
	Python        string      `hcl:"python"`
	DisableChecks bool        `hcl:"disable_checks,optional"`
	PreferNixpkgs *bool       `hcl:"prefer_nixpkgs,optional"`
	IndexFile     string      `hcl:"index_file,optional"`
	Nixpkgs       *hclPinDTO  `hcl:"nixpkgs,block"`
	PyPIFetcher   *hclPinDTO  `hcl:"pypi_fetcher,block"`
	Environments  []hclEnvDTO `hcl:"environment,block"`
}

type hclPinDTO struct {
	Rev    string `hcl:"rev"`
	SHA256 string `hcl:"sha256"`
}

type hclEnvDTO struct {
	Name     string `hcl:"name,label"`
	Lockfile string `hcl:"lockfile"`
	Output   string `hcl:"output"`
}
