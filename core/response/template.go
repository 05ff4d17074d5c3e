package response

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/agusnobile/checkout-verification/core/handler"
)

func executeTemplate(tmpl *template.Template, name string, data any, w io.Writer) error {
	if tmpl == nil {
		return fmt.Errorf("template is nil")
	}
	if name != "" {
		return tmpl.ExecuteTemplate(w, name, data)
	}
	return tmpl.Execute(w, data)
}

// Template creates an HTML response using html/template with 200 OK status.
// The template is buffered before writing so render errors never produce
// partial output.
func Template(tmpl *template.Template, data any) handler.Response {
	return TemplateWithStatus(tmpl, data, http.StatusOK)
}

// TemplateWithStatus creates an HTML response using html/template with a
// custom status code.
func TemplateWithStatus(tmpl *template.Template, data any, status int) handler.Response {
	if tmpl == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if status == 0 {
			status = http.StatusOK
		}

		var buf bytes.Buffer
		if err := executeTemplate(tmpl, "", data, &buf); err != nil {
			// Nothing has been written yet; the error handler still owns
			// the response.
			return err
		}
		w.WriteHeader(status)
		_, writeErr := w.Write(buf.Bytes())
		return writeErr
	}
}

// TemplateName renders a named template from a parsed template collection.
func TemplateName(tmpl *template.Template, name string, data any) handler.Response {
	return TemplateNameWithStatus(tmpl, name, data, http.StatusOK)
}

// TemplateNameWithStatus renders a named template with a custom status code.
func TemplateNameWithStatus(tmpl *template.Template, name string, data any, status int) handler.Response {
	if tmpl == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if status == 0 {
			status = http.StatusOK
		}

		var buf bytes.Buffer
		if err := executeTemplate(tmpl, name, data, &buf); err != nil {
			return err
		}
		w.WriteHeader(status)
		_, writeErr := w.Write(buf.Bytes())
		return writeErr
	}
}
