package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uiscribe/pkg/catalog"
	"github.com/devicelab-dev/uiscribe/pkg/config"
	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/device"
	"github.com/devicelab-dev/uiscribe/pkg/logger"
	"github.com/devicelab-dev/uiscribe/pkg/screen"
	"github.com/devicelab-dev/uiscribe/pkg/uiautomator2"
)

// session bundles the live device connection for one CLI invocation.
// dev is nil when attaching to an already-forwarded server via --socket
// or --port; activity-based screen naming is unavailable then.
type session struct {
	cfg    *config.Config
	dev    *device.AndroidDevice
	client *uiautomator2.Client

	startedServer bool
}

// openSession loads configuration, connects to the device, ensures the
// UIAutomator2 server is running and creates an automation session.
func openSession(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}

	switch {
	case c.String("socket") != "":
		s.client = uiautomator2.NewClient(c.String("socket"))
	case c.Int("port") != 0:
		s.client = uiautomator2.NewClientTCP(c.Int("port"))
	default:
		if err := s.connectDevice(c); err != nil {
			return nil, err
		}
	}

	caps := uiautomator2.Capabilities{PlatformName: "Android"}
	if s.dev != nil {
		if info, err := s.dev.DeviceInfo(); err == nil {
			caps.DeviceName = info.Model
		}
	}
	if err := s.client.CreateSession(caps); err != nil {
		s.close()
		return nil, core.ErrServerUnreachable.WithCause(fmt.Errorf("create session: %w", err))
	}
	logger.Info("session created: %s", s.client.SessionID())

	return s, nil
}

// connectDevice sets up the full device path: adb connection, server
// start and client construction.
func (s *session) connectDevice(c *cli.Context) error {
	serial := c.String("device")
	if serial == "" {
		serial = s.cfg.Device
	}

	dev, err := device.New(serial)
	if err != nil {
		return fmt.Errorf("connect to device: %w", err)
	}
	s.dev = dev
	logger.Info("connected to device %s", dev.Serial())

	if !dev.IsUIAutomator2Running() {
		logger.Info("starting UIAutomator2 server on %s", dev.Serial())
		if err := dev.StartUIAutomator2(device.DefaultUIAutomator2Config()); err != nil {
			return fmt.Errorf("start UIAutomator2: %w", err)
		}
		s.startedServer = true
	}

	if dev.SocketPath() != "" {
		s.client = uiautomator2.NewClient(dev.SocketPath())
	} else {
		s.client = uiautomator2.NewClientTCP(dev.LocalPort())
	}
	return nil
}

// close releases the session and, when this invocation started the
// server, stops it again.
func (s *session) close() {
	if s.client != nil {
		s.client.Close()
	}
	if s.dev != nil && s.startedServer {
		s.dev.StopUIAutomator2()
	}
}

// appReader exposes foreground-activity lookup when a device handle
// exists.
func (s *session) appReader() screen.AppReader {
	if s.dev == nil {
		return nil
	}
	return s.dev
}

// buildCatalog inspects the current screen.
func (s *session) buildCatalog() ([]catalog.Entry, error) {
	builder := catalog.NewBuilder(&catalog.UIA2Source{Client: s.client})
	builder.SetEditableClasses(s.cfg.EditableClasses)
	return builder.Build()
}

// resolver returns the screen-name resolver configured for this session.
func (s *session) resolver() *screen.Resolver {
	r := screen.NewResolver()
	r.SetTitleMarkers(s.cfg.TitleMarkers)
	return r
}

// loadConfig loads the config file named by --config, or searches the
// working directory.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.LoadFromDir(".")
}
