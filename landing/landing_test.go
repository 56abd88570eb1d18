package landing

import (
	"reflect"
	"strings"
	"testing"
)

func TestScrollState(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		y    float64
		want Scroll
	}{
		{0, Scroll{}},
		{50, Scroll{}},
		{51, Scroll{HeaderScrolled: true}},
		{500, Scroll{HeaderScrolled: true}},
		{501, Scroll{HeaderScrolled: true, BackToTopVisible: true}},
	}
	for _, tt := range tests {
		if got := cfg.ScrollState(tt.y); got != tt.want {
			t.Errorf("ScrollState(%v) = %+v, want %+v", tt.y, got, tt.want)
		}
	}
}

func TestActiveSection(t *testing.T) {
	cfg := DefaultConfig()
	sections := []Section{
		{ID: "home", Top: 0, Height: 700},
		{ID: "services", Top: 700, Height: 900},
		{ID: "contact", Top: 1600, Height: 500},
	}
	tests := []struct {
		y      float64
		want   string
		wantOK bool
	}{
		{0, "home", true},
		{599, "home", true},
		{600, "services", true},
		{1500, "contact", true},
		{2000, "", false},
	}
	for _, tt := range tests {
		got, ok := cfg.ActiveSection(sections, tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ActiveSection(%v) = %q, %v; want %q, %v", tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMenu(t *testing.T) {
	var m Menu
	if m.Open() || m.BodyOverflow() != "" {
		t.Fatal("menu should start closed")
	}
	if !m.Toggle() || m.BodyOverflow() != "hidden" {
		t.Fatal("toggle should open the menu and lock scrolling")
	}
	m.Close()
	if m.Open() || m.BodyOverflow() != "" {
		t.Fatal("close should release the menu")
	}
}

func TestFilterCards(t *testing.T) {
	cards := []string{"web", "data", "web", "automation"}
	if got := FilterCards(FilterAll, cards); !reflect.DeepEqual(got, []bool{true, true, true, true}) {
		t.Errorf("all filter = %v", got)
	}
	if got := FilterCards("web", cards); !reflect.DeepEqual(got, []bool{true, false, true, false}) {
		t.Errorf("web filter = %v", got)
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"required empty", Field{Value: "   ", Required: true}, MsgRequired},
		{"optional empty", Field{Value: ""}, ""},
		{"valid email", Field{Type: "email", Value: " ana@example.com ", Required: true}, ""},
		{"missing domain dot", Field{Type: "email", Value: "ana@example", Required: true}, MsgInvalidEmail},
		{"space in email", Field{Type: "email", Value: "a na@example.com", Required: true}, MsgInvalidEmail},
		{"plain text", Field{Type: "text", Value: "Ana", Required: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateField(tt.field); got != tt.want {
				t.Errorf("ValidateField() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateContact(t *testing.T) {
	errs := ValidateForm(Contact{Name: "Ana", Email: "nope"}.Fields())
	want := map[string]string{"email": MsgInvalidEmail, "message": MsgRequired}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("ValidateForm() = %v, want %v", errs, want)
	}

	ok := Contact{Name: "Ana", Email: "ana@example.com", Message: "Olá"}
	if errs := ValidateForm(ok.Fields()); len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("5511915572828", " Olá! Vim pelo site & quero saber mais. ")
	want := "https://wa.me/5511915572828?text=Ol%C3%A1%21%20Vim%20pelo%20site%20%26%20quero%20saber%20mais."
	if got != want {
		t.Errorf("WhatsAppURL() = %q, want %q", got, want)
	}
}

func TestWhatsAppMessage(t *testing.T) {
	c := Contact{Name: "Ana", Email: "ana@example.com", Service: "Web", Message: "Preciso de um site"}
	want := "Olá! Vim pelo site e gostaria de mais informações.\n\n" +
		"*Nome:* Ana\n*Email:* ana@example.com\n*Serviço:* Web\n*Mensagem:* Preciso de um site"
	if got := c.WhatsAppMessage(); got != want {
		t.Errorf("WhatsAppMessage() = %q, want %q", got, want)
	}

	link := WhatsAppURL(DefaultConfig().WhatsAppPhone, c.WhatsAppMessage())
	if !strings.HasPrefix(link, "https://wa.me/5511915572828?text=Ol%C3%A1%21%20Vim") {
		t.Errorf("unexpected link %q", link)
	}
	if !strings.Contains(link, "%0A%0A%2ANome%3A%2A%20Ana%0A") {
		t.Errorf("expected escaped line breaks and bold markers in %q", link)
	}
}
