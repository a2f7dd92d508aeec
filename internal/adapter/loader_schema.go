package adapter

// HCL schema for project declaration files. Module blocks nest
// arbitrarily deep; gohcl handles the recursion.

type projectFile struct {
	Project *projectBlock `hcl:"project,block"`
}

type projectBlock struct {
	Name            string `hcl:"name,label"`
	Offline         bool   `hcl:"offline,optional"`
	DownloadSources bool   `hcl:"download_sources,optional"`
	DownloadDocs    bool   `hcl:"download_docs,optional"`

	Anchors []*anchorBlock `hcl:"anchor,block"`
	Outputs []*outputBlock `hcl:"output,block"`
	Scopes  []*scopeBlock  `hcl:"scope,block"`
	Modules []*moduleBlock `hcl:"module,block"`
}

type moduleBlock struct {
	Name string `hcl:"name,label"`

	Anchors []*anchorBlock `hcl:"anchor,block"`
	Outputs []*outputBlock `hcl:"output,block"`
	Scopes  []*scopeBlock  `hcl:"scope,block"`
	Modules []*moduleBlock `hcl:"module,block"`
}

type anchorBlock struct {
	Name string `hcl:"name,label"`
	Dir  string `hcl:"dir"`
}

type outputBlock struct {
	Dir   string `hcl:"dir"`
	Scope string `hcl:"scope"`
}

type scopeBlock struct {
	Name      string          `hcl:"name,label"`
	Modules   []string        `hcl:"modules,optional"`
	Libraries []*libraryBlock `hcl:"library,block"`
	Files     []string        `hcl:"files,optional"`
	Subtract  *subtractBlock  `hcl:"subtract,block"`
}

type subtractBlock struct {
	Modules   []string        `hcl:"modules,optional"`
	Libraries []*libraryBlock `hcl:"library,block"`
	Files     []string        `hcl:"files,optional"`
}

type libraryBlock struct {
	File    string `hcl:"file"`
	Sources string `hcl:"sources,optional"`
	Docs    string `hcl:"docs,optional"`
	Version string `hcl:"version,optional"`
}
