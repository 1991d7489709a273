package subtitle

import (
	"strings"

	"github.com/mgpai22/srtsh/internal/timecode"
)

func (d *Document) checkIndex(index int) error {
	if index < 1 || index > len(d.entries) {
		return &IndexError{Index: index, Count: len(d.entries)}
	}
	return nil
}

// EntryAt returns a copy of the entry at the 1-based index.
func (d *Document) EntryAt(index int) (Entry, error) {
	if err := d.checkIndex(index); err != nil {
		return Entry{}, err
	}
	return d.entries[index-1].clone(), nil
}

// ShiftTime moves the start and end of every entry from index to the end
// of the document by delta.
func (d *Document) ShiftTime(from int, delta timecode.Duration) error {
	if err := d.checkIndex(from); err != nil {
		return err
	}
	for i := from - 1; i < len(d.entries); i++ {
		d.entries[i].StartTime = d.entries[i].StartTime.Add(delta)
		d.entries[i].EndTime = d.entries[i].EndTime.Add(delta)
	}
	return nil
}

// RemoveAt deletes the entry at index and renumbers the ones after it.
func (d *Document) RemoveAt(index int) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	i := index - 1
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	for ; i < len(d.entries); i++ {
		d.entries[i].Sequence--
	}
	return nil
}

// Search returns entries with at least one text line containing term.
// The match is a case-sensitive substring test, so an empty term matches
// every entry that has text.
func (d *Document) Search(term string) []Entry {
	var result []Entry
	for _, e := range d.entries {
		for _, line := range e.Text {
			if strings.Contains(line, term) {
				result = append(result, e.clone())
				break
			}
		}
	}
	return result
}

// ScanGaps returns entries that start at least minGap after the previous
// entry ended. The first entry is measured from zero.
func (d *Document) ScanGaps(minGap timecode.Duration) []Entry {
	var (
		result  []Entry
		prevEnd timecode.Duration
	)
	for _, e := range d.entries {
		if e.StartTime-prevEnd >= minGap {
			result = append(result, e.clone())
		}
		prevEnd = e.EndTime
	}
	return result
}
