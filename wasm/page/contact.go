//go:build js && wasm

package page

import (
	"context"
	"log"
	"syscall/js"
	"time"

	"github.com/dswdata/landing/emailjs"
	"github.com/dswdata/landing/landing"
)

const noticeTTL = 5 * time.Second

const (
	successIcon = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
    <path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/>
    <polyline points="22 4 12 14.01 9 11.01"/>
</svg>`
	errorIcon = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
    <circle cx="12" cy="12" r="10"/>
    <line x1="12" y1="8" x2="12" y2="12"/>
    <line x1="12" y1="16" x2="12.01" y2="16"/>
</svg>`
	spinner = `<span>` + landing.MsgSending + `</span>
<svg class="btn__icon spin" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
    <circle cx="12" cy="12" r="10" stroke-dasharray="60" stroke-dashoffset="20"/>
</svg>`

	fieldErrorCSS = "color: #ef4444; font-size: 0.875rem; margin-top: 0.25rem; display: block;"
	noticeCSS     = "display: flex; align-items: center; gap: 0.75rem; padding: 1rem; border-radius: 0.5rem; margin-top: 1rem; animation: fadeInUp 0.3s ease;"
	successCSS    = noticeCSS + " background: rgba(34, 197, 94, 0.1); border: 1px solid rgba(34, 197, 94, 0.3); color: #16a34a;"
	failureCSS    = noticeCSS + " background: rgba(239, 68, 68, 0.1); border: 1px solid rgba(239, 68, 68, 0.3); color: #dc2626;"
)

// ContactForm validates the contact form and forwards it by e-mail.
type ContactForm struct {
	cfg       landing.Config
	form      js.Value
	submitBtn js.Value
	btnHTML   string
	mailer    *emailjs.Client
	logger    *log.Logger
}

// NewContactForm binds the form, or returns nil when the page has none.
func NewContactForm(cfg landing.Config, mailer *emailjs.Client, logger *log.Logger) *ContactForm {
	form := query(cfg.Selectors.ContactForm)
	if !exists(form) {
		return nil
	}
	c := &ContactForm{
		cfg:       cfg,
		form:      form,
		submitBtn: form.Call("querySelector", `button[type="submit"]`),
		mailer:    mailer,
		logger:    logger,
	}
	if exists(c.submitBtn) {
		c.btnHTML = c.submitBtn.Get("innerHTML").String()
	}

	on(form, "submit", c.handleSubmit)
	for _, input := range nodes(form.Call("querySelectorAll", ".form__input")) {
		input := input
		on(input, "blur", func(js.Value) { c.validateField(input) })
		on(input, "input", func(js.Value) { c.clearError(input) })
	}
	return c
}

func (c *ContactForm) handleSubmit(ev js.Value) {
	ev.Call("preventDefault")
	if !c.validateForm() {
		return
	}

	contact := landing.Contact{
		Name:    c.value("#name"),
		Email:   c.value("#email"),
		Service: c.value("#service"),
		Message: c.value("#message"),
	}
	c.setLoading(true)

	// Event handlers must not block the browser event loop.
	go func() {
		defer c.setLoading(false)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := c.mailer.Send(ctx, contact.Params()); err != nil {
			c.logger.Printf("contact: send failed: %v", err)
			el := c.notice("form__error-global", errorIcon, landing.MsgSendFailed, failureCSS)
			link := document.Call("createElement", "a")
			link.Set("href", landing.WhatsAppURL(c.cfg.WhatsAppPhone, contact.WhatsAppMessage()))
			link.Set("target", "_blank")
			link.Set("rel", "noopener")
			link.Set("textContent", "WhatsApp")
			el.Call("appendChild", link)
			return
		}
		c.logger.Printf("contact: message from %s sent", contact.Email)
		c.notice("form__success", successIcon, landing.MsgSent, successCSS)
		c.form.Call("reset")
	}()
}

func (c *ContactForm) value(selector string) string {
	el := c.form.Call("querySelector", selector)
	if !exists(el) {
		return ""
	}
	return el.Get("value").String()
}

func (c *ContactForm) validateForm() bool {
	valid := true
	for _, input := range nodes(c.form.Call("querySelectorAll", ".form__input[required]")) {
		if !c.validateField(input) {
			valid = false
		}
	}
	return valid
}

func (c *ContactForm) validateField(input js.Value) bool {
	msg := landing.ValidateField(landing.Field{
		Name:     input.Get("name").String(),
		Type:     input.Get("type").String(),
		Value:    input.Get("value").String(),
		Required: input.Get("required").Bool(),
	})
	if msg != "" {
		c.showFieldError(input, msg)
		return false
	}
	c.clearError(input)
	return true
}

func (c *ContactForm) showFieldError(input js.Value, msg string) {
	c.clearError(input)
	setClass(input, "form__input--error", true)

	el := document.Call("createElement", "span")
	el.Set("className", "form__error")
	el.Set("textContent", msg)
	style(el).Set("cssText", fieldErrorCSS)
	input.Get("parentNode").Call("appendChild", el)
}

func (c *ContactForm) clearError(input js.Value) {
	setClass(input, "form__input--error", false)
	if el := input.Get("parentNode").Call("querySelector", ".form__error"); exists(el) {
		el.Call("remove")
	}
}

func (c *ContactForm) setLoading(loading bool) {
	if !exists(c.submitBtn) {
		return
	}
	c.submitBtn.Set("disabled", loading)
	if loading {
		c.submitBtn.Set("innerHTML", spinner)
	} else {
		c.submitBtn.Set("innerHTML", c.btnHTML)
	}
}

// notice appends a status message to the form and fades it out later.
func (c *ContactForm) notice(class, icon, msg, css string) js.Value {
	el := document.Call("createElement", "div")
	el.Set("className", class)
	el.Set("innerHTML", icon)
	text := document.Call("createElement", "span")
	text.Set("textContent", msg)
	el.Call("appendChild", text)
	style(el).Set("cssText", css)
	c.form.Call("appendChild", el)

	after(noticeTTL, func() {
		style(el).Set("transition", "all 0.3s ease")
		style(el).Set("opacity", "0")
		style(el).Set("transform", "translateY(-10px)")
		after(300*time.Millisecond, func() { el.Call("remove") })
	})
	return el
}
