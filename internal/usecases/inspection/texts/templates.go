package texts

import (
	"fmt"
	"strings"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// FormatSubmitSuccess форматирует сообщение об успешной отправке заявки.
// Поля из ответа workflow (номер разрешения, адрес, task id) добавляются
// только если workflow их вернул.
func FormatSubmitSuccess(sub *domain.Submission) string {
	var message strings.Builder
	message.WriteString("✅ **Inspection Request Submitted!**\n\n")
	message.WriteString(fmt.Sprintf("**Type:** %s\n", sub.InspectionType))
	message.WriteString(fmt.Sprintf("**Notes:** %s\n", sub.Notes))
	message.WriteString(fmt.Sprintf("**Preferred Date:** %s\n", sub.PreferredDate))

	if sub.PermitNumber != nil {
		message.WriteString(fmt.Sprintf("**Permit #:** %s\n", *sub.PermitNumber))
	}
	if sub.Address != nil {
		message.WriteString(fmt.Sprintf("**Address:** %s\n", *sub.Address))
	}
	if sub.TaskID != nil {
		message.WriteString(fmt.Sprintf("**Task ID:** %s\n", *sub.TaskID))
	}

	message.WriteString("\n📧 You will receive a confirmation once scheduled.")
	return message.String()
}

// FormatSubmitSaved форматирует сообщение о сохранении заявки при
// недоступности workflow. Заявка реально лежит в журнале и будет
// доставлена джобой редоставки.
func FormatSubmitSaved(sub *domain.Submission) string {
	return fmt.Sprintf(
		"⚠️ Connection error, but your request was saved:\n\n"+
			"**Type:** %s\n"+
			"**Notes:** %s\n"+
			"**Preferred Date:** %s\n\n"+
			"We'll process it once connection is restored.",
		sub.InspectionType, sub.Notes, sub.PreferredDate)
}

// FormatPendingList форматирует список необработанных заявок чата
func FormatPendingList(submissions []domain.Submission) string {
	var message strings.Builder
	message.WriteString("📊 **Pending Inspections**\n\n")
	for _, sub := range submissions {
		message.WriteString(fmt.Sprintf("• %s — %s", sub.InspectionType, sub.PreferredDate))
		if sub.Status == domain.SubmissionQueued {
			message.WriteString(" (awaiting delivery)")
		}
		message.WriteString("\n")
	}
	return message.String()
}

// FormatCompletedList форматирует список назначенных и проведённых инспекций
func FormatCompletedList(submissions []domain.Submission) string {
	var message strings.Builder
	message.WriteString("✅ **Completed Inspections**\n\n")
	for _, sub := range submissions {
		message.WriteString(fmt.Sprintf("• %s — %s", sub.InspectionType, sub.PreferredDate))
		if sub.Status == domain.SubmissionScheduled {
			message.WriteString(" (scheduled)")
		}
		if sub.PermitNumber != nil {
			message.WriteString(fmt.Sprintf(", permit %s", *sub.PermitNumber))
		}
		message.WriteString("\n")
	}
	return message.String()
}

// FormatStatusUpdate форматирует уведомление об изменении статуса заявки
func FormatStatusUpdate(sub *domain.Submission, note *string) string {
	var message strings.Builder
	switch sub.Status {
	case domain.SubmissionScheduled:
		message.WriteString("📅 **Inspection Scheduled!**\n\n")
	case domain.SubmissionCompleted:
		message.WriteString("✅ **Inspection Completed!**\n\n")
	case domain.SubmissionRejected:
		message.WriteString("❌ **Inspection Request Rejected**\n\n")
	default:
		message.WriteString("ℹ️ **Inspection Status Updated**\n\n")
	}

	message.WriteString(fmt.Sprintf("**Type:** %s\n", sub.InspectionType))
	message.WriteString(fmt.Sprintf("**Preferred Date:** %s\n", sub.PreferredDate))
	if sub.PermitNumber != nil {
		message.WriteString(fmt.Sprintf("**Permit #:** %s\n", *sub.PermitNumber))
	}
	if sub.Address != nil {
		message.WriteString(fmt.Sprintf("**Address:** %s\n", *sub.Address))
	}
	if note != nil && *note != "" {
		message.WriteString(fmt.Sprintf("\n%s", *note))
	}
	return message.String()
}
