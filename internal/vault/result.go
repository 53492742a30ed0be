package vault

// Entry is one artifact processed by Initialize.
type Entry struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"` // vault-relative, forward slashes
}

// String returns the human-readable label, e.g. "📁 00-Inbox/papers".
func (e Entry) String() string {
	return e.Kind.Icon() + " " + e.Path
}

// Result reports what one Initialize call created and what it left alone.
// Directories that already existed appear in neither list.
type Result struct {
	Target  string  `json:"target"`
	Created []Entry `json:"created"`
	Skipped []Entry `json:"skipped"`
}

func (r *Result) created(kind Kind, rel string) {
	r.Created = append(r.Created, Entry{Kind: kind, Path: rel})
}

func (r *Result) skipped(kind Kind, rel string) {
	r.Skipped = append(r.Skipped, Entry{Kind: kind, Path: rel})
}

// CreatedLabels returns the labels of created entries in order.
func (r *Result) CreatedLabels() []string {
	return labels(r.Created)
}

// SkippedLabels returns the labels of skipped entries in order.
func (r *Result) SkippedLabels() []string {
	return labels(r.Skipped)
}

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}
