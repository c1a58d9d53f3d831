package service

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/osteele/liquid"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
	"github.com/schedmail/email-worker/pkg/markdown"
)

// templateVariable matches the root identifier of an output expression,
// e.g. "person" in {{ person.email | downcase }}.
var templateVariable = regexp.MustCompile(`\{\{-?\s*([A-Za-z_][A-Za-z0-9_]*)`)

// RenderService renders subject and body templates. Missing variables
// never fail a render: they come out as a literal {{ name }} placeholder
// so the partially-rendered message stays inspectable. String values are
// HTML-escaped before binding.
type RenderService struct {
	engine *liquid.Engine
	logger logger.Logger
}

func NewRenderService(logger logger.Logger) *RenderService {
	return &RenderService{
		engine: liquid.NewEngine(),
		logger: logger,
	}
}

// RenderTemplate renders one template string against the context.
func (s *RenderService) RenderTemplate(source string, context map[string]interface{}) (string, error) {
	// The liquid scanner passes an unterminated {{ or {% through as
	// plain text; a malformed template must fail the email instead.
	if err := checkDelimiters(source); err != nil {
		return "", &domain.TemplateError{Err: err}
	}

	bindings := make(map[string]interface{}, len(context))
	for key, value := range context {
		bindings[key] = escapeValue(value)
	}

	for _, match := range templateVariable.FindAllStringSubmatch(source, -1) {
		name := match[1]
		if _, ok := bindings[name]; !ok {
			bindings[name] = fmt.Sprintf("{{ %s }}", name)
		}
	}

	rendered, err := s.engine.ParseAndRenderString(source, bindings)
	if err != nil {
		return "", &domain.TemplateError{Err: err}
	}
	return rendered, nil
}

// RenderEmail renders subject and body, keeps the non-empty resolved
// recipients in order, and converts the body from markdown to HTML. The
// markdown pass runs unconditionally, so a plain-text body still arrives
// as HTML paragraphs.
func (s *RenderService) RenderEmail(email *domain.ScheduledEmail, context map[string]interface{}, recipients []string) (*domain.RenderedEmail, error) {
	subject, err := s.RenderTemplate(email.Subject, context)
	if err != nil {
		return nil, err
	}

	body, err := s.RenderTemplate(email.Body, context)
	if err != nil {
		return nil, err
	}

	toHeader := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient != "" {
			toHeader = append(toHeader, recipient)
		}
	}

	htmlBody, err := markdown.ToHTML(body)
	if err != nil {
		return nil, &domain.TemplateError{Err: err}
	}

	return &domain.RenderedEmail{
		ScheduledEmail:   *email,
		SubjectRendered:  subject,
		BodyRendered:     htmlBody,
		ToHeaderRendered: toHeader,
	}, nil
}

// checkDelimiters rejects template sources where a {{ or {% opener
// never closes before the end of the template.
func checkDelimiters(source string) error {
	for i := 0; i+1 < len(source); {
		var closer string
		switch source[i : i+2] {
		case "{{":
			closer = "}}"
		case "{%":
			closer = "%}"
		default:
			i++
			continue
		}
		end := strings.Index(source[i+2:], closer)
		if end < 0 {
			return fmt.Errorf("unterminated %s at offset %d", source[i:i+2], i)
		}
		i += 2 + end + len(closer)
	}
	return nil
}

// escapeValue HTML-escapes strings recursively through the structures a
// resolved context can contain.
func escapeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return html.EscapeString(v)
	case map[string]interface{}:
		escaped := make(map[string]interface{}, len(v))
		for key, inner := range v {
			escaped[key] = escapeValue(inner)
		}
		return escaped
	case []map[string]interface{}:
		escaped := make([]interface{}, len(v))
		for i, inner := range v {
			escaped[i] = escapeValue(inner)
		}
		return escaped
	case []interface{}:
		escaped := make([]interface{}, len(v))
		for i, inner := range v {
			escaped[i] = escapeValue(inner)
		}
		return escaped
	default:
		return v
	}
}
