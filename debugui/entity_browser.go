package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/homestead/entity"
	"github.com/plus3/homestead/world"
)

// EntityRow is one live pool slot as shown in the browser.
type EntityRow struct {
	Handle entity.Handle
	Arch   entity.Archetype
	X, Y   float32
	Health int
}

type EntityBrowser struct {
	rows          []EntityRow
	filterText    string
	sortColumn    int
	sortAscending bool
	selected      entity.Handle
	currentPage   int
	perPage       int
}

func NewEntityBrowser(perPage int) EntityBrowser {
	return EntityBrowser{sortAscending: true, perPage: perPage}
}

// Selected returns the handle picked in the table, or entity.Nil.
func (eb *EntityBrowser) Selected() entity.Handle {
	return eb.selected
}

func (eb *EntityBrowser) Render(w *world.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if w.Pool.Get(eb.selected) == nil {
		eb.selected = entity.Nil
	}

	eb.rows = CollectRows(w.Pool, eb.rows[:0])

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, -30), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Health")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		SortRows(eb.rows, eb.sortColumn, eb.sortAscending)

		filtered := FilterRows(eb.rows, eb.filterText)
		start, end := page(len(filtered), eb.currentPage, eb.perPage)
		for _, row := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == row.Handle
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Handle.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.Handle
			}

			imgui.TableNextColumn()
			imgui.Text(row.Arch.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f, %.0f", row.X, row.Y))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Health))
		}

		imgui.EndTable()
	}

	filtered := FilterRows(eb.rows, eb.filterText)
	if len(filtered) > eb.perPage {
		totalPages := (len(filtered) + eb.perPage - 1) / eb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		eb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// CollectRows appends a row for every live entity in pool to dst.
func CollectRows(pool *entity.Pool, dst []EntityRow) []EntityRow {
	for h, e := range pool.All() {
		dst = append(dst, EntityRow{
			Handle: h,
			Arch:   e.Arch,
			X:      e.Pos.X(),
			Y:      e.Pos.Y(),
			Health: e.Health,
		})
	}
	return dst
}

// SortRows orders rows by column: 0 slot, 1 archetype, 2 distance from
// the origin, 3 health.
func SortRows(rows []EntityRow, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool

		switch column {
		case 1:
			less = a.Arch.String() < b.Arch.String()
		case 2:
			less = a.X*a.X+a.Y*a.Y < b.X*b.X+b.Y*b.Y
		case 3:
			less = a.Health < b.Health
		default:
			less = a.Handle.Index() < b.Handle.Index()
		}

		if !ascending {
			return !less
		}
		return less
	})
}

// FilterRows keeps the rows whose slot or archetype name contains text,
// ignoring case. An empty filter returns rows unchanged.
func FilterRows(rows []EntityRow, text string) []EntityRow {
	if text == "" {
		return rows
	}

	filtered := make([]EntityRow, 0, len(rows))
	filterLower := strings.ToLower(text)
	for _, row := range rows {
		idStr := fmt.Sprintf("%d", row.Handle.Index())
		if !strings.Contains(idStr, filterLower) && !strings.Contains(row.Arch.String(), filterLower) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func page(total, current, perPage int) (start, end int) {
	if perPage <= 0 {
		return 0, total
	}
	start = current * perPage
	if start > total {
		start = total
	}
	end = min(start+perPage, total)
	return start, end
}
