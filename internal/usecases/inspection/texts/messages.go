package texts

// Пользовательские сообщения бота. Тексты и emoji согласованы с
// продуктовой командой, не менять без ревью.

const (
	// MainMenu заголовок главного меню
	MainMenu = "🏗️ **Construction Management Bot**\n\n" +
		"Welcome! Please select an option from the menu below:"

	// AskDate приглашение ввести дату после примечаний
	AskDate = "📅 **Preferred Date**\n\n" +
		"Please provide your preferred inspection date:\n" +
		"Format: MM/DD/YYYY or MM-DD-YYYY\n\n" +
		"Example: 06/15/2025"

	// InvalidDate дата не распознана, пользователь остаётся на шаге даты
	InvalidDate = "❌ Invalid date format. Please use MM/DD/YYYY format.\n" +
		"Example: 06/15/2025"

	// Processing плейсхолдер на время запроса к workflow
	Processing = "⏳ Processing your inspection request..."

	// SubmitRejected workflow ответил не-200, заявка не будет повторена
	SubmitRejected = "❌ Error submitting inspection request. Please try again later."

	// Cancelled операция отменена командой /cancel
	Cancelled = "Operation cancelled. Type 'bot' to return to the main menu."

	// SectionUnavailable раздел меню ещё не реализован
	SectionUnavailable = "🚧 This section is not available yet.\n\n" +
		"Use the button below to return to the main menu."

	// NoPendingInspections в журнале нет необработанных заявок чата
	NoPendingInspections = "📭 No pending inspections for this chat."

	// NoCompletedInspections в журнале нет назначенных/проведённых инспекций чата
	NoCompletedInspections = "📭 No completed inspections for this chat."

	// BackToMainMenuLabel подпись кнопки возврата в главное меню
	BackToMainMenuLabel = "🔙 Back to Main Menu"
)
