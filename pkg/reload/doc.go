// Package reload keeps a Detector in sync with a rules directory on disk.
//
// A Holder builds an immutable uadetector.Detector from the directory and
// swaps it atomically whenever the YAML files change. A failed rebuild keeps
// serving the previous detector, so a half-written or broken rule file never
// takes detection down:
//
//	h, err := reload.New("/etc/uadetector/rules", reload.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	go h.Run(ctx)
//
//	info, ok := h.Detect(r.UserAgent(), nil)
//
// File events are debounced so an editor writing several files triggers a
// single rebuild. Each rebuild gets a fresh result cache when WithCacheSize
// is set, since cached results of the old corpus would be stale.
package reload
