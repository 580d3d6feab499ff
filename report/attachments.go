package report

import (
	"strings"

	"github.com/benedoc-inc/nearmiss/layout"
	"github.com/benedoc-inc/nearmiss/types"
)

// baseName returns the last element of a path written with either slash.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// loadAttachment reads and fully decodes one attachment image.
func loadAttachment(path string) (*layout.Source, error) {
	src, err := layout.LoadSource(path)
	if err != nil {
		return nil, err
	}
	if err := src.Verify(); err != nil {
		return nil, err
	}
	return src, nil
}

// buildAttachments lays out every attachment scaled to the page, in order.
// Files that are not images become a line with their name.
func buildAttachments(in *inputs) (Section, error) {
	var blocks layout.Stack
	for i, path := range in.answer.Attachments {
		name := baseName(path)
		if i > 0 {
			blocks = append(blocks, layout.Spacer{Height: sectionGap})
		}
		blocks = append(blocks, &layout.Anchor{Title: name})

		src, err := loadAttachment(path)
		if err != nil {
			in.warnings.Add(types.NewWarningWithCode(types.WarningLevelWarning, types.ErrCodeAttachmentDecode,
				"attachment is not a readable image, showing its name instead").
				WithContext("path", path).
				WithContext("cause", err.Error()))
			blocks = append(blocks, subtitle(name))
			continue
		}
		blocks = append(blocks, layout.FitFrame(src, contentWidth, contentHeight))
	}
	return Section{Kind: SectionAttachments, Block: blocks}, nil
}
