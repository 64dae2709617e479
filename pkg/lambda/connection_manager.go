package lambda

import (
	"context"
	"sync"

	"project-lookup-api/internal/config"
	"project-lookup-api/pkg/server"
)

// ContainerFactory builds the service container for a cold start
type ContainerFactory func(ctx context.Context) (*server.Container, error)

// ConnectionManager keeps the service container alive across warm
// invocations of the same Lambda runtime.
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
	factory   ContainerFactory
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(defaultContainerFactory)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager using factory
func NewConnectionManager(factory ContainerFactory) *ConnectionManager {
	return &ConnectionManager{factory: factory}
}

func defaultContainerFactory(ctx context.Context) (*server.Container, error) {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}
	return server.NewContainer(ctx, cfg)
}

// GetContainer returns the service container, building it on first use.
// A failed build is not cached, so the next invocation tries again.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	container, err := cm.factory(ctx)
	if err != nil {
		return nil, err
	}

	cm.container = container
	return container, nil
}

// Cleanup closes the container so the next call rebuilds it
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}

	err := cm.container.Close()
	cm.container = nil
	return err
}
