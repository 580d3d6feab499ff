package writer

import (
	"fmt"
)

// OutlineItem is a document outline entry pointing at a spot on a page.
type OutlineItem struct {
	Title string
	Page  int     // zero-based page index
	Top   float64 // y coordinate shown at the top of the window
}

// AddOutline writes a flat outline for items and returns the Outlines
// object number. pageObjNums lists the page objects in document order.
func (w *PDFWriter) AddOutline(items []OutlineItem, pageObjNums []int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("empty outline")
	}

	// Reserve numbers first so siblings can reference each other
	outlinesNum := w.ReserveObject()
	itemNums := make([]int, len(items))
	for i := range items {
		itemNums[i] = w.ReserveObject()
	}

	for i, item := range items {
		if item.Page < 0 || item.Page >= len(pageObjNums) {
			return 0, fmt.Errorf("outline item %q points at page %d of %d", item.Title, item.Page+1, len(pageObjNums))
		}
		dict := Dictionary{
			"Title":  TextString(item.Title),
			"Parent": fmt.Sprintf("%d 0 R", outlinesNum),
			"Dest":   fmt.Sprintf("[%d 0 R /XYZ 0 %s null]", pageObjNums[item.Page], formatNumber(item.Top)),
		}
		if i > 0 {
			dict["Prev"] = fmt.Sprintf("%d 0 R", itemNums[i-1])
		}
		if i < len(items)-1 {
			dict["Next"] = fmt.Sprintf("%d 0 R", itemNums[i+1])
		}
		w.SetObject(itemNums[i], w.formatDictionary(dict))
	}

	outlines := Dictionary{
		"Type":  "/Outlines",
		"First": fmt.Sprintf("%d 0 R", itemNums[0]),
		"Last":  fmt.Sprintf("%d 0 R", itemNums[len(items)-1]),
		"Count": len(items),
	}
	w.SetObject(outlinesNum, w.formatDictionary(outlines))

	return outlinesNum, nil
}
