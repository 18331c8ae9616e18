package lint

import (
	"fmt"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/shapelint/pkg/estree"
)

// Context is what a rule's entry point receives for one file.
type Context struct {
	File   *File
	RuleID string

	rule     Rule
	options  map[string]any
	severity Severity
	sink     Reporter
	logger   *slog.Logger
}

// Program returns the root node of the file under analysis.
func (c *Context) Program() *estree.Node {
	return c.File.Program
}

// Source returns the raw source text, which may be empty.
func (c *Context) Source() string {
	return c.File.Source
}

// Logger returns the analyzer's logger, scoped to the rule and file.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Options returns the rule's option map. The map is shared and must not be
// modified.
func (c *Context) Options() map[string]any {
	return c.options
}

// DecodeOptions decodes the rule's options into out, a pointer to a struct
// tagged with `mapstructure`. Fields missing from the options keep their
// current values.
func (c *Context) DecodeOptions(out any) error {
	if len(c.options) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		// Keys are matched exactly, as Config.Validate does.
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(c.options); err != nil {
		return fmt.Errorf("%s: invalid options: %w", c.RuleID, err)
	}
	return nil
}

// Report records a violation at node using the fixed text of messageID.
func (c *Context) Report(node *estree.Node, messageID string) {
	if node == nil {
		return
	}
	msg, ok := c.rule.Messages()[messageID]
	if !ok {
		msg = messageID
	}
	c.sink.Report(Diagnostic{
		RuleID:           c.RuleID,
		MessageID:        messageID,
		Severity:         c.severity,
		Message:          msg,
		Path:             c.File.Path,
		Pos:              node.Span.Start,
		EndPos:           node.Span.End,
		DocumentationURL: BuildDocURL(c.RuleID),
		ImpactScore:      ImpactFor(c.severity).Int(),
	})
}
