package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/wgx/internal/models"
)

var _ list.Item = packageItem{}

// packageItem wraps [models.Package] and its row number to implement [list.Item].
type packageItem struct {
	row int
	pkg models.Package
}

func (i packageItem) FilterValue() string { return i.pkg.Name }
func (i packageItem) Title() string       { return fmt.Sprintf("%d. %s", i.row, i.pkg.DisplayName()) }
func (i packageItem) Description() string {
	return fmt.Sprintf("%s • %s • %s", i.pkg.DisplayID(), i.pkg.DisplayVersion(), i.pkg.DisplayPublisher())
}
