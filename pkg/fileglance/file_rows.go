package fileglance

import (
	"path/filepath"
	"time"

	"github.com/fileglance/fileglance/pkg/dirsnap"
	"github.com/fileglance/fileglance/pkg/fsutils"
	"github.com/fileglance/fileglance/pkg/sniff"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*FileRows)(nil)

const (
	nameColIndex = iota
	typeColIndex
	sizeColIndex
	createdColIndex
	accessedColIndex
	modifiedColIndex
	permsColIndex

	columnCount
)

var columnTitles = [columnCount]string{
	"Name", "Type", "Size", "Creation", "Accessed", "Modified", "Permissions",
}

const (
	dirGlyph     = "🗁"
	fileGlyph    = "🗋"
	symlinkGlyph = "🔗"
)

var typeLabel = sniff.Label

func NewFileRows() *FileRows {
	return &FileRows{labels: make(map[string]string)}
}

// FileRows feeds the files table straight from a directory snapshot.
// Row 0 is the header, followed by a ".." row everywhere but the root.
type FileRows struct {
	tview.TableContentReadOnly

	snapshot dirsnap.Snapshot
	err      error

	labels map[string]string
}

// SetListing replaces the rows wholesale with a fresh snapshot.
func (r *FileRows) SetListing(snapshot dirsnap.Snapshot, err error) {
	r.snapshot = snapshot
	r.err = err
	r.labels = make(map[string]string)
}

func (r *FileRows) hasParent() bool {
	dir := r.snapshot.Dir
	return dir != "" && filepath.Dir(dir) != dir
}

// FirstEntryRow is the table row of the first snapshot entry.
func (r *FileRows) FirstEntryRow() int {
	if r.hasParent() {
		return 2
	}
	return 1
}

// IsParentRow reports whether row is the ".." row.
func (r *FileRows) IsParentRow(row int) bool {
	return r.hasParent() && row == 1
}

// EntryAt maps a table row back to its snapshot entry.
func (r *FileRows) EntryAt(row int) (dirsnap.Entry, bool) {
	i := row - r.FirstEntryRow()
	if i < 0 || i >= len(r.snapshot.Entries) {
		return dirsnap.Entry{}, false
	}
	return r.snapshot.Entries[i], true
}

func (r *FileRows) GetRowCount() int {
	n := r.FirstEntryRow()
	if len(r.snapshot.Entries) == 0 {
		return n + 1
	}
	return n + len(r.snapshot.Entries)
}

func (r *FileRows) GetColumnCount() int {
	return columnCount
}

func (r *FileRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.headerCell(col)
	}
	if r.IsParentRow(row) {
		if col == nameColIndex {
			cell := tview.NewTableCell("..")
			cell.SetExpansion(1)
			return cell
		}
		return nil
	}
	if r.err != nil {
		if col == nameColIndex {
			cell := tview.NewTableCell(" " + dirGlyph + r.err.Error())
			cell.SetTextColor(tcell.ColorOrangeRed)
			return cell
		}
		return nil
	}
	if len(r.snapshot.Entries) == 0 {
		if col == nameColIndex {
			cell := tview.NewTableCell("[::i]No entries[::-]")
			cell.SetTextColor(tcell.ColorGray)
			return cell
		}
		return nil
	}
	entry, ok := r.EntryAt(row)
	if !ok {
		return nil
	}
	cell := r.entryCell(entry, col)
	if cell == nil {
		return nil
	}
	cell.SetTextColor(GetColorByEntry(entry))
	return cell
}

func (r *FileRows) headerCell(col int) *tview.TableCell {
	if col < 0 || col >= columnCount {
		return nil
	}
	cell := tview.NewTableCell(columnTitles[col])
	cell.SetTextColor(Style.TableHeaderColor)
	cell.SetSelectable(false)
	switch col {
	case nameColIndex:
		cell.SetExpansion(1)
	case sizeColIndex, createdColIndex, accessedColIndex, modifiedColIndex:
		cell.SetAlign(tview.AlignRight)
	}
	return cell
}

func (r *FileRows) entryCell(entry dirsnap.Entry, col int) *tview.TableCell {
	switch col {
	case nameColIndex:
		glyph := fileGlyph
		switch entry.Kind {
		case dirsnap.KindFolder:
			glyph = dirGlyph
		case dirsnap.KindOther:
			glyph = symlinkGlyph
		}
		cell := tview.NewTableCell(glyph + tview.Escape(entry.Name))
		cell.SetExpansion(1)
		return cell
	case typeColIndex:
		return tview.NewTableCell(r.typeLabelFor(entry))
	case sizeColIndex:
		var sizeText string
		if entry.Kind != dirsnap.KindFolder {
			sizeText = fsutils.GetSizeShortText(int64(entry.Size))
		}
		cell := tview.NewTableCell(sizeText)
		cell.SetAlign(tview.AlignRight)
		return cell
	case createdColIndex:
		return ageCell(entry.Created)
	case accessedColIndex:
		return ageCell(entry.Accessed)
	case modifiedColIndex:
		return ageCell(entry.Modified)
	case permsColIndex:
		return tview.NewTableCell(entry.Perms)
	default:
		return nil
	}
}

// typeLabelFor sniffs file contents at most once per listing.
func (r *FileRows) typeLabelFor(entry dirsnap.Entry) string {
	switch entry.Kind {
	case dirsnap.KindFolder:
		return "Folder"
	case dirsnap.KindOther:
		return "Symlink"
	}
	label, ok := r.labels[entry.Path]
	if !ok {
		label = typeLabel(entry.Path)
		r.labels[entry.Path] = label
	}
	return label
}

func ageCell(age *time.Duration) *tview.TableCell {
	var s string
	if age != nil {
		s = fsutils.GetAgeShortText(*age)
	}
	cell := tview.NewTableCell(s)
	cell.SetAlign(tview.AlignRight)
	return cell
}
