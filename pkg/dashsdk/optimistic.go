package dashsdk

import "context"

// Command is an optimistic mutation. Apply updates local state immediately
// so the UI reflects the change before the server confirms it; Do performs
// the remote call; Revert restores the prior state verbatim when the call
// fails. Revert must undo exactly what Apply did, nothing more.
type Command struct {
	Apply  func()
	Do     func(ctx context.Context) error
	Revert func()

	// Invalidates lists cache keys to drop after a confirmed mutation, so
	// the next read observes the server's version. Requires Cache to be set.
	Cache       *Cache
	Invalidates []string
}

// Run executes the command: apply, call, and either commit (invalidate the
// listed cache keys) or revert. The returned error is the remote call's
// error, untouched.
func (c Command) Run(ctx context.Context) error {
	if c.Apply != nil {
		c.Apply()
	}

	if err := c.Do(ctx); err != nil {
		if c.Revert != nil {
			c.Revert()
		}
		return err
	}

	if c.Cache != nil && len(c.Invalidates) > 0 {
		c.Cache.Invalidate(c.Invalidates...)
	}
	return nil
}
