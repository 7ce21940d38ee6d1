// Package timerbar renders a text progress bar for a process with a known
// number of steps.
//
// A bar is rendered once per step and the caller writes the returned text
// wherever it wants, usually over the previous line:
//
//	bar, err := timerbar.New(len(items), timerbar.WithWidth(20))
//	if err != nil {
//	    return err
//	}
//	for i, item := range items {
//	    fmt.Print("\r", bar.RenderAtStep(i))
//	    process(item)
//	}
//	fmt.Println("\r" + bar.RenderAtStep(len(items)))
//
// Output for 4 steps, width 10 and fill glyph "#" at step 2:
//
//	|#####-----|
//
// Widths and positions count grapheme clusters, so multi-byte glyphs such
// as the default "▊" take one cell.
package timerbar
