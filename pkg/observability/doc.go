/*
Package observability exports drag-and-drop activity as Prometheus metrics.

Metrics are fed by lifecycle hooks, so they plug into the engine like any other listener:

	m := observability.NewMetrics("myapp")
	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}
	eng, err := dropzone.New(dropzone.WithLifecycleHooks(m.Hooks()))
*/
package observability
