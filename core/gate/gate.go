package gate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// defaultDenyMessage names the blocked file; %s is the base filename.
const defaultDenyMessage = "Blocked read of sensitive file %s. Files with this name typically hold credentials or other private configuration."

// Options configures a Gate.
type Options struct {
	// AdditionalNames extends the built-in denylist.
	AdditionalNames []string
	// IgnoredNames disables built-in denylist entries.
	IgnoredNames []string
	// DenyMessage overrides the denial message. A %s verb, if present,
	// receives the offending filename.
	DenyMessage string
}

// Gate turns a raw beforeReadFile hook event into a permission Decision.
// Every failure mode resolves to allow: the gate is a convenience check,
// not the security boundary, and must never block a legitimate read
// because of its own malfunction.
type Gate struct {
	classifier  *Classifier
	denyMessage string
}

// New creates a Gate with the built-in denylist adjusted by opts.
func New(opts Options) *Gate {
	ignored := make(map[string]struct{}, len(opts.IgnoredNames))
	for _, name := range opts.IgnoredNames {
		ignored[strings.ToLower(name)] = struct{}{}
	}

	names := make([]string, 0, len(DefaultSensitiveNames())+len(opts.AdditionalNames))
	for _, name := range DefaultSensitiveNames() {
		if _, ok := ignored[strings.ToLower(name)]; ok {
			continue
		}
		names = append(names, name)
	}
	names = append(names, opts.AdditionalNames...)

	denyMessage := opts.DenyMessage
	if denyMessage == "" {
		denyMessage = defaultDenyMessage
	}

	return &Gate{
		classifier:  NewClassifier(names),
		denyMessage: denyMessage,
	}
}

// Default returns a Gate over the unmodified built-in denylist.
func Default() *Gate {
	return New(Options{})
}

// Sensitive reports whether the base filename of path is on the
// effective denylist.
func (g *Gate) Sensitive(path string) bool {
	return g.classifier.Sensitive(path)
}

// Names returns the effective denylist in lowercase-folded form.
func (g *Gate) Names() []string {
	return g.classifier.Names()
}

// Decide evaluates one raw hook event and returns the Decision to write
// back. It never returns an error and never panics: malformed JSON and a
// missing or non-string file_path allow the read, and a recover at the
// top converts any unexpected fault into an allow with a diagnostic.
func (g *Gate) Decide(raw []byte) (decision Decision) {
	defer func() {
		if r := recover(); r != nil {
			decision = AllowWithMessage(fmt.Sprintf("internal error during sensitive file check: %v", r))
		}
	}()

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return AllowWithMessage(fmt.Sprintf("invalid hook input: %v", err))
	}

	filePath, ok := payload["file_path"].(string)
	if !ok || filePath == "" {
		// Nothing to check.
		return Allow()
	}

	if !g.classifier.Sensitive(filePath) {
		return Allow()
	}

	return Deny(g.denyReason(BaseName(filePath)))
}

// denyReason formats the denial message, guaranteeing the filename
// appears even when a configured override forgot the %s verb.
func (g *Gate) denyReason(filename string) string {
	if strings.Contains(g.denyMessage, "%s") {
		return fmt.Sprintf(g.denyMessage, filename)
	}
	return fmt.Sprintf("%s (%s)", g.denyMessage, filename)
}
