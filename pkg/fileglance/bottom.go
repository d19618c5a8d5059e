package fileglance

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuItem is a clickable hint on the bottom bar.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}

const (
	hotkeyColor   = "yellow"
	disabledColor = "darkgray"
)

type bottom struct {
	*tview.TextView
	browser *Browser
	status  string
}

func newBottom(browser *Browser) *bottom {
	b := &bottom{
		browser: browser,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}

	b.SetHighlightedFunc(b.highlighted)

	b.render()

	return b
}

func (b *bottom) setStatus(status string) {
	b.status = status
	b.render()
}

func (b *bottom) render() {
	var sb strings.Builder

	sb.WriteString(b.renderMenuItems(b.menuItems()))

	if b.status != "" {
		sb.WriteString(" | [orangered]")
		sb.WriteString(tview.Escape(b.status))
		sb.WriteString("[-]")
	}

	b.SetText(sb.String())
}

// menuItems dims history actions that would be no-ops right now.
func (b *bottom) menuItems() []MenuItem {
	navState := b.browser.nav

	back := b.browser.back
	if !navState.CanBack() {
		back = nil
	}
	forward := b.browser.forward
	if !navState.CanForward() {
		forward = nil
	}
	up := b.browser.up
	if !navState.CanUp() {
		up = nil
	}

	return []MenuItem{
		{Title: "Enter Open", HotKeys: []string{"Enter"}, Action: b.browser.openSelection},
		{Title: "Bksp Back", HotKeys: []string{"Bksp"}, Action: back},
		{Title: "f Fwd", HotKeys: []string{"f"}, Action: forward},
		{Title: "u Up", HotKeys: []string{"u"}, Action: up},
		{Title: "r Refresh", HotKeys: []string{"r"}, Action: b.browser.refresh},
		{Title: "F2 Rename", HotKeys: []string{"F2"}, Action: b.browser.showRename},
		{Title: "F8 Delete", HotKeys: []string{"F8"}, Action: b.browser.deleteSelection},
		{Title: "q Quit", HotKeys: []string{"q"}, Action: b.browser.quit},
	}
}

func (b *bottom) renderMenuItems(menuItems []MenuItem) string {
	const separator = "┊"
	var sb strings.Builder
	for _, mi := range menuItems {
		if mi.Action == nil {
			sb.WriteString(fmt.Sprintf("[%s]%s[-]", disabledColor, mi.Title))
			sb.WriteString(separator)
			continue
		}
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", hotkeyColor, key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		title = fmt.Sprintf(`["%s"]%s[""]`, mi.HotKeys[0], title)
		sb.WriteString(title)
		sb.WriteString(separator)
	}
	fullText := sb.String()
	trimmedText := fullText[:sb.Len()-len(separator)]
	return trimmedText
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}

	region := added[0]
	for _, mi := range b.menuItems() {
		if mi.HotKeys[0] == region && mi.Action != nil {
			b.Highlight()
			mi.Action()
			return
		}
	}
}
