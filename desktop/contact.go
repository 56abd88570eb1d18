package desktop

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ncruces/zenity"

	"github.com/dswdata/landing/emailjs"
	"github.com/dswdata/landing/landing"
)

const dialogTitle = "Contato"

// AskContact collects a contact message through native dialogs, validates
// it and forwards it to the e-mail service. Cancelling a dialog is not an
// error.
func AskContact(ctx context.Context, mailer *emailjs.Client) error {
	var c landing.Contact
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Nome", &c.Name},
		{"Email", &c.Email},
		{"Serviço de interesse", &c.Service},
		{"Mensagem", &c.Message},
	}
	for _, p := range prompts {
		v, err := zenity.Entry(p.label, zenity.Title(dialogTitle))
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return nil
			}
			return err
		}
		*p.dst = v
	}

	if errs := landing.ValidateForm(c.Fields()); len(errs) > 0 {
		var msgs []string
		for _, f := range c.Fields() {
			if msg, ok := errs[f.Name]; ok {
				msgs = append(msgs, f.Name+": "+msg)
			}
		}
		return zenity.Error(strings.Join(msgs, "\n"), zenity.Title(dialogTitle))
	}

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := mailer.Send(ctx, c.Params()); err != nil {
		_ = zenity.Error(landing.MsgSendFailed, zenity.Title(dialogTitle))
		return err
	}
	return zenity.Info(landing.MsgSent, zenity.Title(dialogTitle))
}
