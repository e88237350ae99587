package notify

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
)

// FyneNotifier shows alerts through the desktop notification service of a Fyne app.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier wraps app.
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

// Authorize reports whether the app can post notifications. Fyne hands
// permission handling to the platform, so a live app is treated as granted.
func (notifier *FyneNotifier) Authorize(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if notifier.app == nil {
		return false, errors.New("fyne app is not initialised")
	}
	return true, nil
}

// Notify posts message on the UI thread.
func (notifier *FyneNotifier) Notify(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fyne.Do(func() {
		notifier.app.SendNotification(fyne.NewNotification(message.Title, message.Body))
	})
	return nil
}
