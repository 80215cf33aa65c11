package mailer

import (
	"bytes"
	"html/template"
)

// birthdayTemplate é o corpo HTML do email de aniversário
var birthdayTemplate = template.Must(template.New("birthday").Parse(`
<!DOCTYPE html>
<html lang="pt-BR">
<body style="margin:0;padding:0;background:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr>
      <td align="center" style="padding:32px 16px;">
        <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;overflow:hidden;">
          <tr>
            <td style="background:#1a1a2e;padding:24px;text-align:center;">
              <h1 style="color:#ffffff;margin:0;font-size:24px;">{{.StoreName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding:32px;">
              <h2 style="color:#1a1a2e;margin-top:0;">Feliz aniversário, {{.Name}}! 🎉</h2>
              <p style="color:#444;line-height:1.6;">
                Toda a equipe da {{.StoreName}} deseja a você um dia repleto de
                alegrias e realizações. Obrigado por fazer parte da nossa história!
              </p>
              <p style="color:#444;line-height:1.6;">
                Passe na loja para um café: temos sempre novidades esperando por você.
              </p>
            </td>
          </tr>
          <tr>
            <td style="background:#f0f0f0;padding:16px;text-align:center;color:#888;font-size:12px;">
              Você recebeu este email porque é cliente da {{.StoreName}}.
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// BirthdayEmailData contém os dados do template de aniversário
type BirthdayEmailData struct {
	Name      string
	StoreName string
}

// RenderBirthdayEmail gera o corpo HTML do email de aniversário
func RenderBirthdayEmail(data BirthdayEmailData) (string, error) {
	var buf bytes.Buffer
	if err := birthdayTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
