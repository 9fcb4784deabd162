package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListRecipes
	IntentShowRecipe
	IntentAddRecipe    // payload: recipe reference, selection: ingredient positions
	IntentRemoveRecipe // payload: recipe name or id
	IntentShowList
	IntentToggleItem // payload: item name
	IntentClearChecked
	IntentClearAll
	IntentHideChecked
	IntentShowChecked
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListRecipes:
		return "list_recipes"
	case IntentShowRecipe:
		return "show_recipe"
	case IntentAddRecipe:
		return "add_recipe"
	case IntentRemoveRecipe:
		return "remove_recipe"
	case IntentShowList:
		return "show_list"
	case IntentToggleItem:
		return "toggle_item"
	case IntentClearChecked:
		return "clear_checked"
	case IntentClearAll:
		return "clear_all"
	case IntentHideChecked:
		return "hide_checked"
	case IntentShowChecked:
		return "show_checked"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type      IntentType
	Payload   string // optional argument text, e.g. recipe id for show
	Selection []int  // 1-based ingredient positions for add; empty means all
}
