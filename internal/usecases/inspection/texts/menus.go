package texts

// Заголовки разделов меню
const (
	InspectionsTitle = "🔍 **Inspection Management**\n\nSelect an option:"

	NewInspectionTitle = "🔍 **New Inspection Request**\n\n" +
		"What type of inspection do you need?"

	ElectricalTitle = "⚡ **Electrical Inspection**\n\n" +
		"Please select the electrical inspection phase:"
)

// Инструкции листов меню: чек-лист требований + приглашение ввести примечания.
// Формат строк повторяет регламент выездных инспекций.
const (
	ElectricRoughInstructions = "⚡ **Rough Electrical Inspection**\n\n" +
		"📋 **Requirements for Rough Electrical:**\n" +
		"MOCKUP validation points....\n" +
		"• All wiring must be installed\n" +
		"• Junction boxes in place\n" +
		"• Panel box installed\n" +
		"• Grounding system complete\n\n" +
		"Please provide:\n" +
		"• Notes\n" +
		"• Preferred Date\n" +
		"Format: `Building A | June 15 | Project Manager`\n\n" +
		"Type your Note:"

	ElectricFinishInstructions = "✨ **Finish Electrical Inspection**\n\n" +
		"📋 **Requirements for Finish Electrical:**\n" +
		"MOCKUP validation points....\n" +
		"• All outlets and switches installed\n" +
		"• Light fixtures mounted\n" +
		"• Panel breakers labeled\n" +
		"• GFCI/AFCI protection verified\n\n" +
		"Please provide:\n" +
		"• Notes\n" +
		"• Preferred Date\n" +
		"Format: `Building A | June 15 | Project Manager`\n\n" +
		"Type your Note:"

	PlumbingInstructions = "🔧 **Plumbing Inspection**\n\n" +
		"📋 **Requirements for Plumbing:**\n" +
		"MOCKUP validation points....\n" +
		"• All pipes installed and tested\n" +
		"• Water pressure test completed\n" +
		"• Drain system verified\n" +
		"• Fixtures ready for inspection\n\n" +
		"Please provide:\n" +
		"• Notes\n" +
		"• Preferred Date\n" +
		"Format: `Building B | June 16 | Site Supervisor`\n\n" +
		"Type your Note:"

	FramingInstructions = "🏗️ **Framing Inspection**\n\n" +
		"📋 **Requirements for Framing:**\n" +
		"MOCKUP validation points....\n" +
		"• All framing complete\n" +
		"• Headers and beams installed\n" +
		"• Shear walls completed\n" +
		"• Hurricane ties/clips installed\n\n" +
		"Please provide:\n" +
		"• Notes\n" +
		"• Preferred Date\n" +
		"Format: `Building C | June 17 | Construction Manager`\n\n" +
		"Type your Note:"
)
