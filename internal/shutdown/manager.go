package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"practice-tracker/internal/logger"
)

const componentTimeout = 5 * time.Second

// Component is anything that needs an orderly stop when the application
// exits.
type Component struct {
	Name string
	Stop func()
}

// Manager runs registered shutdown hooks once, in reverse registration
// order, either on OS signal or when the window closes.
type Manager struct {
	mu         sync.Mutex
	components []Component
	log        logger.Logger
	done       chan struct{}
	once       sync.Once
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		components: make([]Component, 0),
		log:        log,
		done:       make(chan struct{}),
	}
}

func (m *Manager) Register(name string, stop func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, Component{Name: name, Stop: stop})
}

// Listen installs the signal handler. onSignal runs after the shutdown
// sequence so the caller can stop the UI event loop.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
		if onSignal != nil {
			onSignal()
		}
	}()
}

// Shutdown runs every registered hook at most once, bounding each by a
// timeout so a stuck component cannot hang exit.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		defer close(m.done)

		m.mu.Lock()
		components := make([]Component, len(m.components))
		copy(components, m.components)
		m.mu.Unlock()

		m.log.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		for i := len(components) - 1; i >= 0; i-- {
			component := components[i]

			finished := make(chan struct{})
			go func() {
				defer close(finished)
				component.Stop()
			}()

			select {
			case <-finished:
				m.log.Debug("ShutdownManager", "component stopped", map[string]interface{}{
					"component": component.Name,
				})
			case <-time.After(componentTimeout):
				m.log.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
					"component": component.Name,
				})
			}
		}

		m.log.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
