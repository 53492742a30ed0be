package vault

// File and directory names inside a vault.
const (
	// TemplatesDir holds the Obsidian note templates
	TemplatesDir = ".obsidian/templates"

	// WorkflowsDir holds the agent workflow documents
	WorkflowsDir = ".agent/workflows"

	// RootConfigFile is the agent's operating instructions at the vault root
	RootConfigFile = "GEMINI.md"

	// TemplateSuffix is appended to a template name to form its filename
	TemplateSuffix = "_template.md"

	// DocExt is the extension of every workflow document
	DocExt = ".md"
)

// folders is the vault directory tree. Parents are implied.
var folders = [...]string{
	"00-Inbox/papers",
	"00-Inbox/repos",
	"00-Inbox/models",
	"00-Inbox/datasets",
	"00-Inbox/spaces",
	"00-Inbox/websites",
	"01-Projects",
	"02-Papers",
	"03-Codebases",
	"04-Concepts",
	"05-Books",
	"06-Resources/pdfs/papers",
	"06-Resources/pdfs/books",
	"06-Resources/pdfs/reports",
	"06-Resources/videos",
	"06-Resources/datasets",
	"06-Resources/models",
	"07-Daily",
	"08-Maps",
	"09-Models",
	"10-Implementations",
	"11-Datasets",
	"12-Websites",
}

// Layout returns the vault directory tree as relative, forward-slash paths.
// The returned slice is a copy.
func Layout() []string {
	out := make([]string, len(folders))
	copy(out, folders[:])
	return out
}

// TemplatePath returns the vault-relative destination of a template.
func TemplatePath(name string) string {
	return TemplatesDir + "/" + name + TemplateSuffix
}

// WorkflowPath returns the vault-relative destination of a workflow.
func WorkflowPath(name string) string {
	return WorkflowsDir + "/" + name + DocExt
}
