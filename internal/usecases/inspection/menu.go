package inspection

import (
	"context"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection/texts"
)

// Идентификаторы узлов меню. Совпадают с callback_data кнопок,
// поэтому менять их нельзя: старые сообщения с клавиатурами
// продолжают жить в чатах после деплоя.
const (
	nodeMainMenu       = "main_menu"
	nodeInspections    = "menu_inspections"
	nodePermits        = "menu_permits"
	nodeMaterials      = "menu_materials"
	nodeReports        = "menu_reports"
	nodeSettings       = "menu_settings"
	nodeNewInspection  = "inspection_new"
	nodeSchedule       = "inspection_schedule"
	nodeInspReports    = "inspection_reports"
	nodeElectric       = "inspect_type_electric"
	leafElectricRough  = "electric_rough"
	leafElectricFinish = "electric_finish"
	leafPlumbing       = "inspect_type_plumbing"
	leafFraming        = "inspect_type_framing"
)

// Кнопки-действия: не узлы дерева, обрабатываются usecase напрямую
const (
	actionPending   = "inspection_pending"
	actionCompleted = "inspection_completed"
)

// buildMenuTree собирает статичное дерево меню бота
func buildMenuTree() (*domain.MenuTree, error) {
	nodes := []*domain.MenuNode{
		{
			ID:    nodeMainMenu,
			Title: texts.MainMenu,
			Buttons: []domain.MenuButton{
				{Label: "🔍 Inspections", Target: nodeInspections},
				{Label: "📋 Permits", Target: nodePermits},
				{Label: "🏗️ Materials", Target: nodeMaterials},
				{Label: "📊 Reports", Target: nodeReports},
				{Label: "⚙️ Settings", Target: nodeSettings},
			},
		},
		{
			ID:    nodeInspections,
			Title: texts.InspectionsTitle,
			Buttons: []domain.MenuButton{
				{Label: "🔍 Request New Inspection", Target: nodeNewInspection},
				{Label: "📊 View Pending Inspections", Target: actionPending},
				{Label: "✅ Completed Inspections", Target: actionCompleted},
				{Label: "📅 Schedule Inspection", Target: nodeSchedule},
				{Label: "📝 Inspection Reports", Target: nodeInspReports},
				{Label: texts.BackToMainMenuLabel, Target: nodeMainMenu},
			},
		},
		{
			ID:    nodeNewInspection,
			Title: texts.NewInspectionTitle,
			Buttons: []domain.MenuButton{
				{Label: "⚡ Electrical", Target: nodeElectric},
				{Label: "🔧 Plumbing", Target: leafPlumbing},
				{Label: "🏗️ Framing", Target: leafFraming},
				{Label: "🔙 Back", Target: nodeInspections},
			},
		},
		{
			ID:    nodeElectric,
			Title: texts.ElectricalTitle,
			Buttons: []domain.MenuButton{
				{Label: "🔌 Rough Electrical", Target: leafElectricRough},
				{Label: "✨ Finish Electrical", Target: leafElectricFinish},
				{Label: "🔙 Back", Target: nodeNewInspection},
			},
		},
		{
			ID:   leafElectricRough,
			Leaf: &domain.MenuLeaf{InspectionType: "Electrical - Rough", Instructions: texts.ElectricRoughInstructions},
		},
		{
			ID:   leafElectricFinish,
			Leaf: &domain.MenuLeaf{InspectionType: "Electrical - Finish", Instructions: texts.ElectricFinishInstructions},
		},
		{
			ID:   leafPlumbing,
			Leaf: &domain.MenuLeaf{InspectionType: "Plumbing", Instructions: texts.PlumbingInstructions},
		},
		{
			ID:   leafFraming,
			Leaf: &domain.MenuLeaf{InspectionType: "Framing", Instructions: texts.FramingInstructions},
		},
		stubNode(nodePermits),
		stubNode(nodeMaterials),
		stubNode(nodeReports),
		stubNode(nodeSettings),
		stubNode(nodeSchedule),
		stubNode(nodeInspReports),
	}

	actions := []string{actionPending, actionCompleted}

	return domain.NewMenuTree(nodeMainMenu, nodes, actions)
}

// stubNode раздел, который ещё не реализован: заглушка с кнопкой возврата
func stubNode(id string) *domain.MenuNode {
	return &domain.MenuNode{
		ID:    id,
		Title: texts.SectionUnavailable,
		Buttons: []domain.MenuButton{
			{Label: texts.BackToMainMenuLabel, Target: nodeMainMenu},
		},
	}
}

// keyboardFor собирает inline-клавиатуру узла, одна кнопка в ряд
func keyboardFor(node *domain.MenuNode) map[string]interface{} {
	rows := make([][]map[string]interface{}, 0, len(node.Buttons))
	for _, button := range node.Buttons {
		rows = append(rows, []map[string]interface{}{
			{
				"text":          button.Label,
				"callback_data": button.Target,
			},
		})
	}
	return map[string]interface{}{
		"inline_keyboard": rows,
	}
}

// backToMainMenuKeyboard клавиатура с единственной кнопкой возврата в меню
func backToMainMenuKeyboard() map[string]interface{} {
	return map[string]interface{}{
		"inline_keyboard": [][]map[string]interface{}{
			{
				{
					"text":          texts.BackToMainMenuLabel,
					"callback_data": nodeMainMenu,
				},
			},
		},
	}
}

// ShowMainMenu отправляет главное меню новым сообщением
func (s *Service) ShowMainMenu(ctx context.Context, chatID int64) error {
	root := s.Menu.Root()
	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, root.Title, keyboardFor(root))
}

// renderNode перерисовывает узел меню на месте нажатого сообщения.
// Если исходного сообщения нет (редкий случай для устаревших callback),
// меню уходит новым сообщением.
func (s *Service) renderNode(ctx context.Context, chatID int64, messageID int64, node *domain.MenuNode) error {
	if messageID != 0 {
		return s.TelegramClient.EditMessageWithKeyboard(ctx, chatID, messageID, node.Title, keyboardFor(node))
	}
	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, node.Title, keyboardFor(node))
}
