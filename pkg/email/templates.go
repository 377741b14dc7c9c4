package email

import (
	"fmt"
	"time"
)

// ReminderEmailData contains the data needed for appointment reminder emails.
type ReminderEmailData struct {
	PatientName string
	Email       string
	ClinicName  string
	DoctorName  string
	StartTime   time.Time
	Timezone    string
	Reason      string
	AppName     string
}

// BuildAppointmentReminderEmail creates a reminder email for an upcoming
// appointment. Times are rendered in the clinic's timezone when it is valid,
// UTC otherwise.
func BuildAppointmentReminderEmail(data ReminderEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Medora"
	}

	patientName := data.PatientName
	if patientName == "" {
		patientName = "there"
	}

	loc, err := time.LoadLocation(data.Timezone)
	if err != nil || loc == nil {
		loc = time.UTC
	}
	when := data.StartTime.In(loc).Format("Monday, 2 Jan 2006 at 15:04")

	subject := fmt.Sprintf("Appointment reminder: %s", when)

	reasonLine := ""
	if data.Reason != "" {
		reasonLine = fmt.Sprintf("\nReason: %s\n", data.Reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming appointment at %s.

Doctor: %s
When: %s
%s
If you can no longer make it, please contact the clinic to cancel or
reschedule.

Thanks,
The %s Team`,
		patientName, data.ClinicName, data.DoctorName, when, reasonLine, appName)

	reasonHTML := ""
	if data.Reason != "" {
		reasonHTML = fmt.Sprintf(`<p>Reason: %s</p>`, data.Reason)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder of your upcoming appointment at <strong>%s</strong>.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        Doctor: <strong>%s</strong><br>
        When: <strong>%s</strong>
    </p>
    %s
    <p>If you can no longer make it, please contact the clinic to cancel or reschedule.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		patientName, data.ClinicName, data.DoctorName, when, reasonHTML, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// WelcomeEmailData contains the data needed for account welcome emails.
type WelcomeEmailData struct {
	FirstName         string
	Email             string
	ClinicName        string
	TemporaryPassword string
	AppName           string
}

// BuildWelcomeEmail creates a welcome email for a newly created staff
// account. The temporary password section is included only when one was
// generated.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Medora"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Your %s account for %s", appName, data.ClinicName)

	passwordLine := ""
	if data.TemporaryPassword != "" {
		passwordLine = fmt.Sprintf("\nTemporary password: %s\nPlease change it after your first sign-in.\n", data.TemporaryPassword)
	}

	textBody := fmt.Sprintf(`Hi %s,

An account has been created for you at %s on %s.

Sign in with this email address: %s
%s
Thanks,
The %s Team`,
		firstName, data.ClinicName, appName, data.Email, passwordLine, appName)

	passwordHTML := ""
	if data.TemporaryPassword != "" {
		passwordHTML = fmt.Sprintf(`<p>Temporary password:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">%s</p>
    <p style="color: #6b7280; font-size: 14px;"><em>Please change it after your first sign-in.</em></p>`, data.TemporaryPassword)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>An account has been created for you at <strong>%s</strong> on %s.</p>
    <p>Sign in with this email address: <strong>%s</strong></p>
    %s
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.ClinicName, appName, data.Email, passwordHTML, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
