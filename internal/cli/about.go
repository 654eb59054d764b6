package cli

import (
	"fmt"

	"github.com/mentalift/mentalift/internal/constants"
)

// AboutCmd prints the application blurb.
type AboutCmd struct{}

func (c *AboutCmd) Run(ctx *Context) error {
	fmt.Println(constants.AboutText)
	return nil
}
