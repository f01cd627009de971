package cli

import (
	"fmt"

	"github.com/joeldevian/myday-rutinas/internal/identity"
)

// LoginCmd records the identity handed over by the external provider. The
// app never sees credentials; it only keys storage by the opaque user id.
type LoginCmd struct {
	User   string `arg:"" help:"Opaque user id from the identity provider."`
	Name   string `short:"n" help:"Display name." default:""`
	Avatar string `help:"Avatar URL." default:""`
}

func (c *LoginCmd) Run(ctx *Context) error {
	profile := identity.Profile{UserID: c.User, Name: c.Name, AvatarURL: c.Avatar}
	if err := ctx.Identity.Save(profile); err != nil {
		return err
	}
	name := c.Name
	if name == "" {
		name = c.User
	}
	fmt.Printf("Signed in as %s\n", name)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Identity.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.Identity.Current()
	if err != nil {
		return err
	}
	if user.Name != "" {
		fmt.Printf("%s (%s)\n", user.Name, user.UserID)
	} else {
		fmt.Println(user.UserID)
	}
	return nil
}
