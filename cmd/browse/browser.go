package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JaimeStill/advocates/internal/advocates"
	"github.com/JaimeStill/advocates/internal/listing"
	"github.com/JaimeStill/advocates/pkg/debounce"
	"github.com/JaimeStill/advocates/pkg/formatting"
	"github.com/JaimeStill/advocates/pkg/pagination"
	"github.com/JaimeStill/advocates/web/app"
)

// searchMsg carries a search term once typing has settled.
type searchMsg struct {
	term string
}

// resultMsg carries the outcome of one fetch.
type resultMsg struct {
	req    listing.Request
	result *pagination.PageResult[advocates.Advocate]
	err    error
}

var columns = []table.Column{
	{Title: "First Name", Width: 12},
	{Title: "Last Name", Width: 12},
	{Title: "City", Width: 14},
	{Title: "Degree", Width: 6},
	{Title: "Specialties", Width: 40},
	{Title: "Years", Width: 5},
	{Title: "Phone", Width: 16},
}

type browser struct {
	ctx    context.Context
	cancel context.CancelFunc

	client  *listing.Client
	listing *listing.Model
	sizes   []int

	input     textinput.Model
	table     table.Model
	debouncer *debounce.Debouncer[string]

	// send delivers messages from outside the update loop. Set to
	// tea.Program.Send before the program runs.
	send func(tea.Msg)
}

func newBrowser(ctx context.Context, client *listing.Client, cfg app.Config, delay time.Duration) *browser {
	ti := textinput.New()
	ti.Placeholder = "Name, city, degree, specialty or years"
	ti.CharLimit = 100
	ti.Width = 60
	ti.Focus()

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
		table.WithStyles(tableStyles()),
	)

	b := &browser{
		ctx:     ctx,
		client:  client,
		listing: listing.NewModel(cfg.DefaultPageSize),
		sizes:   cfg.PageSizes,
		input:   ti,
		table:   t,
		send:    func(tea.Msg) {},
	}
	b.debouncer = debounce.New(delay, func(term string) {
		b.send(searchMsg{term: term})
	})
	return b
}

func (b *browser) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, b.fetch(b.listing.Init()))
}

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.table.SetWidth(msg.Width)
		b.table.SetHeight(max(msg.Height-10, 5))
		return b, nil

	case searchMsg:
		return b, b.issue(b.listing.CommitSearch(msg.term))

	case resultMsg:
		if b.listing.Resolve(msg.req, msg.result, msg.err) && b.listing.Status() == listing.StatusReady {
			b.table.SetRows(tableRows(b.listing.Rows()))
			b.table.GotoTop()
		}
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			b.debouncer.Cancel()
			if b.cancel != nil {
				b.cancel()
			}
			return b, tea.Quit
		case "esc":
			b.debouncer.Cancel()
			b.input.SetValue("")
			return b, b.issue(b.listing.ResetSearch())
		case "enter":
			b.debouncer.Cancel()
			return b, b.issue(b.listing.CommitSearch(b.input.Value()))
		case "pgdown":
			if p := b.listing.Params().Page; p < b.listing.TotalPages() {
				return b, b.issue(b.listing.SetPage(p + 1))
			}
			return b, nil
		case "pgup":
			return b, b.issue(b.listing.SetPage(b.listing.Params().Page - 1))
		case "ctrl+s":
			next := nextPageSize(b.sizes, b.listing.Params().PageSize)
			return b, b.issue(b.listing.SetPageSize(next))
		case "up":
			b.table.MoveUp(1)
			return b, nil
		case "down":
			b.table.MoveDown(1)
			return b, nil
		}
	}

	before := b.input.Value()
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	if after := b.input.Value(); after != before {
		b.debouncer.Push(after)
	}
	return b, cmd
}

func (b *browser) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Advocates"))
	sb.WriteString("\n")
	sb.WriteString(b.input.View())
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("Searching for: " + b.listing.Params().SearchTerm))
	sb.WriteString("\n\n")

	switch b.listing.Status() {
	case listing.StatusLoading:
		sb.WriteString(mutedStyle.Render("Loading advocates..."))
	case listing.StatusError:
		sb.WriteString(errorStyle.Render(b.listing.Message()))
	case listing.StatusReady:
		if len(b.listing.Rows()) == 0 {
			sb.WriteString(mutedStyle.Render("No advocates found."))
		} else {
			sb.WriteString(b.table.View())
		}
	}

	sb.WriteString("\n")
	sb.WriteString(footerStyle.Render(b.footer()))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func (b *browser) footer() string {
	params := b.listing.Params()
	return fmt.Sprintf(
		"Page %d of %d | %d results | %d per page\nenter search | esc reset | pgup/pgdown page | ctrl+s page size | ctrl+c quit",
		params.Page, max(b.listing.TotalPages(), 1), b.listing.Total(), params.PageSize,
	)
}

// issue starts a fetch for req when the listing state changed.
func (b *browser) issue(req listing.Request, changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	return b.fetch(req)
}

// fetch aborts any in-flight request and runs req in the background.
func (b *browser) fetch(req listing.Request) tea.Cmd {
	if b.cancel != nil {
		b.cancel()
	}
	ctx, cancel := context.WithCancel(b.ctx)
	b.cancel = cancel

	return func() tea.Msg {
		defer cancel()
		result, err := b.client.Fetch(ctx, req.Params)
		return resultMsg{req: req, result: result, err: err}
	}
}

func tableRows(rows []advocates.Advocate) []table.Row {
	out := make([]table.Row, len(rows))
	for i, a := range rows {
		out[i] = table.Row{
			a.FirstName,
			a.LastName,
			a.City,
			a.Degree,
			strings.Join(a.Specialties, ", "),
			strconv.Itoa(a.YearsOfExperience),
			formatting.FormatPhone(a.PhoneNumber),
		}
	}
	return out
}

// nextPageSize returns the option after current, wrapping to the first.
func nextPageSize(sizes []int, current int) int {
	if len(sizes) == 0 {
		return current
	}
	i := slices.Index(sizes, current)
	return sizes[(i+1)%len(sizes)]
}
