package email

import (
	"errors"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/veridia/identity/internal/logging"
)

type EmailTemplate int8

const (
	EmailTemplateAccountCreated EmailTemplate = iota
	EmailTemplatePasswordReset
)

var emailTemplateIDs = map[EmailTemplate]string{
	EmailTemplateAccountCreated: "",
	EmailTemplatePasswordReset:  "d-3f2a9d6abe4c45e1a8b0757f12c0d9be", // transactional-password-reset
}

var (
	AppDomain      = "https://veridia.app"
	FromAddress    = "noreply@veridia.app"
	FromName       = "Veridia"
	SendgridAPIKey = ""

	// TestMode disables real delivery. Messages are logged and collected
	// in TestDataSent instead.
	TestMode     = false
	TestDataSent = []map[string]interface{}{}

	ErrUnknownTemplate = errors.New("unknown template")
	ErrNotConfigured   = errors.New("email sending not configured")
)

func IsConfigured() bool {
	return len(SendgridAPIKey) > 0
}

func SendTemplate(name, address string, template EmailTemplate, data map[string]interface{}) error {
	if TestMode {
		logging.Debugf("sent email to %q: %+v", address, data)
		TestDataSent = append(TestDataSent, data)
		return nil // quietly return
	}

	if len(SendgridAPIKey) == 0 {
		return ErrNotConfigured
	}

	templateID, ok := emailTemplateIDs[template]
	if !ok || len(templateID) == 0 {
		return ErrUnknownTemplate
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(FromName, FromAddress))
	m.SetTemplateID(templateID)

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(name, address))

	for k, v := range data {
		p.SetDynamicTemplateData(k, v)
	}

	m.AddPersonalizations(p)

	request := sendgrid.GetRequest(SendgridAPIKey, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.API(request)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		logging.Debugf("sendgrid api responded with status code %d", response.StatusCode)
	}

	return nil
}
