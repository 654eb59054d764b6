package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/validation"
)

// LoginFormModel holds the values bound to the login form.
type LoginFormModel struct {
	Username string
}

// CheckinFormModel holds the values bound to the check-in form.
type CheckinFormModel struct {
	Mood    int
	Stress  int
	Anxiety int
	Sleep   int
	Notes   string
}

// NewLoginForm creates the username prompt shown on the login screen.
func NewLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Description("Letters, digits, dots, underscores, and hyphens").
				Value(&fm.Username).
				Validate(validation.Username),
		),
	).WithTheme(huh.ThemeDracula())
}

func ratingOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, constants.RatingMax)
	for i := constants.RatingMin; i <= constants.RatingMax; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
	}
	return opts
}

// NewCheckinForm creates the daily check-in form with four rating
// selects and an optional notes field.
func NewCheckinForm(fm *CheckinFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Mood").
				Description("1 = worst, 10 = best").
				Options(ratingOptions()...).
				Value(&fm.Mood),
			huh.NewSelect[int]().
				Title("Stress").
				Description("1 = none, 10 = overwhelming").
				Options(ratingOptions()...).
				Value(&fm.Stress),
			huh.NewSelect[int]().
				Title("Anxiety").
				Description("1 = none, 10 = severe").
				Options(ratingOptions()...).
				Value(&fm.Anxiety),
			huh.NewSelect[int]().
				Title("Sleep Quality").
				Description("1 = terrible, 10 = excellent").
				Options(ratingOptions()...).
				Value(&fm.Sleep),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				Description("Optional: how are you feeling today?").
				CharLimit(500).
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewCheckinFormModel returns a form model with every rating preset to
// the middle of the scale.
func NewCheckinFormModel() *CheckinFormModel {
	mid := (constants.RatingMin + constants.RatingMax) / 2
	return &CheckinFormModel{Mood: mid, Stress: mid, Anxiety: mid, Sleep: mid}
}
