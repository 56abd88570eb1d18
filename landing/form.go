package landing

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	MsgRequired     = "Este campo é obrigatório"
	MsgInvalidEmail = "Digite um email válido"
	MsgSent         = "Mensagem enviada com sucesso! Entrarei em contato em breve."
	MsgSendFailed   = "Erro ao enviar mensagem. Tente novamente ou use o WhatsApp."
	MsgSending      = "Enviando..."
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field is a single form input as seen by the validator.
type Field struct {
	Name     string
	Type     string
	Value    string
	Required bool
}

// ValidateField returns the error message for the field, or an empty
// string when the field is valid.
func ValidateField(f Field) string {
	value := strings.TrimSpace(f.Value)
	if value == "" {
		if f.Required {
			return MsgRequired
		}
		return ""
	}
	if f.Type == "email" && !emailRe.MatchString(value) {
		return MsgInvalidEmail
	}
	return ""
}

// ValidateForm validates every field and returns the failures keyed by
// field name.
func ValidateForm(fields []Field) map[string]string {
	errs := make(map[string]string)
	for _, f := range fields {
		if msg := ValidateField(f); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// Contact is the payload forwarded to the e-mail service.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Fields returns the contact as validator input. Service is optional.
func (c Contact) Fields() []Field {
	return []Field{
		{Name: "name", Type: "text", Value: c.Name, Required: true},
		{Name: "email", Type: "email", Value: c.Email, Required: true},
		{Name: "service", Type: "select", Value: c.Service},
		{Name: "message", Type: "textarea", Value: c.Message, Required: true},
	}
}

// Params returns the contact as e-mail template parameters.
func (c Contact) Params() map[string]string {
	return map[string]string{
		"name":    c.Name,
		"email":   c.Email,
		"service": c.Service,
		"message": c.Message,
	}
}

// WhatsAppMessage renders the contact as a prefilled chat message, used
// as the fallback when e-mail delivery fails.
func (c Contact) WhatsAppMessage() string {
	return "Olá! Vim pelo site e gostaria de mais informações.\n\n" +
		"*Nome:* " + c.Name + "\n" +
		"*Email:* " + c.Email + "\n" +
		"*Serviço:* " + c.Service + "\n" +
		"*Mensagem:* " + c.Message
}

// WhatsAppURL builds the click to chat link for phone with a prefilled message.
func WhatsAppURL(phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(message)), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + text
}
