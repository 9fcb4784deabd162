package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/sous/internal/conversation"
	"github.com/hammamikhairi/sous/internal/display"
	"github.com/hammamikhairi/sous/internal/domain"
	"github.com/hammamikhairi/sous/internal/engine"
	"github.com/hammamikhairi/sous/internal/logger"
	"github.com/hammamikhairi/sous/internal/shopping"
)

// runREPL wires the interactive shell and blocks until the user quits.
func runREPL(ctx context.Context, e *env) error {
	cb, err := e.loadCookbook()
	if err != nil {
		return err
	}
	cfg, err := e.loadCategories()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eng := engine.New(cb, shopping.New(), e.log,
		engine.WithConfig(cfg),
		engine.WithHideChecked(e.settings.HideChecked),
	)
	ui := display.NewUI(eng)

	app := &cliApp{
		engine:   eng,
		parser:   conversation.NewKeywordParser(e.log),
		notifier: conversation.NewCLINotifier(e.log, ui.Printf),
		log:      e.log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		app.run(ctx, cb.Len())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		e.log.Error("display: %v", err)
		return err
	}
	return nil
}

type cliApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI
	allDone  bool // last reported state, so the all-done line prints once
}

func (a *cliApp) run(ctx context.Context, recipes int) {
	a.ui.PrintChat(conversation.LineWelcome(recipes))
	a.ui.Println("")
	a.showRecipes(ctx)

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case <-a.ui.QuitChan():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q, selection=%v)", intent.Type, intent.Payload, intent.Selection)
		if !a.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent runs one intent. It returns false when the shell should exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentListRecipes:
		a.showRecipes(ctx)
	case domain.IntentShowRecipe:
		a.showRecipe(ctx, intent.Payload)
	case domain.IntentAddRecipe:
		a.addRecipe(ctx, intent.Payload, intent.Selection)
	case domain.IntentRemoveRecipe:
		a.removeRecipe(ctx, intent.Payload)
	case domain.IntentShowList:
		a.showList()
	case domain.IntentToggleItem:
		a.toggle(ctx, intent.Payload)
	case domain.IntentClearChecked:
		a.say(ctx, conversation.LineClearedChecked(a.engine.ClearChecked()))
	case domain.IntentClearAll:
		a.engine.ClearAll()
		a.allDone = false
		a.say(ctx, conversation.LineClearedAll())
	case domain.IntentHideChecked, domain.IntentShowChecked:
		hide := intent.Type == domain.IntentHideChecked
		a.engine.SetHideChecked(hide)
		a.say(ctx, conversation.LineHidingChecked(hide))
		a.showList()
	case domain.IntentQuit:
		a.say(ctx, conversation.LineBye())
		return false
	default:
		a.say(ctx, conversation.LineUnknown(intent.Payload))
	}
	return true
}

func (a *cliApp) say(ctx context.Context, text string) {
	if err := a.notifier.Notify(ctx, text); err != nil {
		a.log.Error("notify: %v", err)
	}
}

func (a *cliApp) sayUrgent(ctx context.Context, text string) {
	if err := a.notifier.NotifyUrgent(ctx, text); err != nil {
		a.log.Error("notify: %v", err)
	}
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeading("Commands")
	for _, line := range conversation.HelpText() {
		a.ui.PrintHint(line)
	}
}

func (a *cliApp) showRecipes(ctx context.Context) {
	summaries, err := a.engine.ListRecipes(ctx)
	if err != nil {
		a.log.Error("listing recipes: %v", err)
		a.ui.PrintUrgent(err.Error())
		return
	}
	a.ui.PrintBlock(display.RenderRecipeList(summaries))
}

func (a *cliApp) showRecipe(ctx context.Context, ref string) {
	r, err := a.engine.GetRecipe(ctx, ref)
	if err != nil {
		a.reportLookup(ctx, ref, err)
		return
	}
	a.ui.PrintBlock(display.RenderRecipe(r, display.TermWidth()))
	if n := a.position(ctx, r.ID); n > 0 {
		a.ui.PrintHint(conversation.LineHowToAdd(n))
	}
}

func (a *cliApp) addRecipe(ctx context.Context, ref string, selection []int) {
	r, added, err := a.engine.AddRecipe(ctx, ref, selection)
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		a.sayUrgent(ctx, conversation.LineInvalidSelection(r.Name, len(r.Ingredients)))
		return
	case err != nil:
		a.reportLookup(ctx, ref, err)
		return
	}
	a.allDone = false
	a.say(ctx, conversation.LineAdded(r.Name, len(added), len(r.Ingredients)))
}

func (a *cliApp) removeRecipe(ctx context.Context, ref string) {
	name, err := a.engine.RemoveRecipe(ctx, ref)
	if err != nil {
		a.log.Debug("remove %q: %v", ref, err)
		a.sayUrgent(ctx, conversation.LineNotOnList(ref))
		return
	}
	a.say(ctx, conversation.LineRemoved(name))
}

func (a *cliApp) toggle(ctx context.Context, name string) {
	item, err := a.engine.Toggle(name)
	if err != nil {
		a.sayUrgent(ctx, conversation.LineNoSuchItem(name))
		return
	}
	a.say(ctx, conversation.LineToggled(item.Name, item.Checked))

	snap := a.engine.Snapshot()
	done := snap.Total > 0 && snap.Remaining == 0
	if done && !a.allDone {
		a.say(ctx, conversation.LineAllDone())
	}
	a.allDone = done
}

func (a *cliApp) showList() {
	snap := a.engine.Snapshot()
	if len(snap.RecipeNames) > 0 {
		a.ui.PrintHeading(strings.Join(snap.RecipeNames, ", "))
	}
	a.ui.PrintBlock(display.RenderList(snap.Groups))
	if snap.Total > 0 {
		a.ui.PrintHint(display.StatusText(snap))
	}
}

// reportLookup turns a recipe lookup error into a user-facing line.
func (a *cliApp) reportLookup(ctx context.Context, ref string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		a.sayUrgent(ctx, conversation.LineNoSuchRecipe(ref))
		return
	}
	a.log.Error("recipe %q: %v", ref, err)
	a.ui.PrintUrgent(err.Error())
}

// position returns the 1-based list number of a recipe, or 0.
func (a *cliApp) position(ctx context.Context, id string) int {
	summaries, err := a.engine.ListRecipes(ctx)
	if err != nil {
		return 0
	}
	for i, s := range summaries {
		if s.ID == id {
			return i + 1
		}
	}
	return 0
}
