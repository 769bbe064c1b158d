package cli

import (
	"context"
	"fmt"
)

func (a *App) version(ctx context.Context) {
	if a.bridge == nil {
		fmt.Fprintln(a.out, "unknown (no bridge)")
		return
	}
	v := a.bridge.GetAppVersion(ctx)
	if v == "" {
		fmt.Fprintln(a.out, "unknown")
		return
	}
	fmt.Fprintln(a.out, v)
}

func (a *App) path(ctx context.Context, name string) {
	if a.bridge == nil {
		fmt.Fprintln(a.out, "unavailable (no bridge)")
		return
	}
	p := a.bridge.GetAppPath(ctx, name)
	if p == "" {
		fmt.Fprintf(a.out, "no path for %q\n", name)
		return
	}
	fmt.Fprintln(a.out, p)
}

func (a *App) env(ctx context.Context, name string) {
	if a.bridge == nil {
		fmt.Fprintln(a.out, "unavailable (no bridge)")
		return
	}
	v := a.bridge.GetEnv(ctx, name)
	if v == "" {
		fmt.Fprintf(a.out, "%s is unset or not allowed\n", name)
		return
	}
	fmt.Fprintf(a.out, "%s=%s\n", name, v)
}
