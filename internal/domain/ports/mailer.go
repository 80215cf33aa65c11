package ports

// Mailer define a interface para envio de emails
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// BirthdayMailer define a interface para o email de aniversário pronto
// (template renderizado e assunto montado)
type BirthdayMailer interface {
	SendBirthday(to, name string) error
}
