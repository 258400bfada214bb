package device

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// DefaultPowerSupplyDir is where Linux exposes power supplies
const DefaultPowerSupplyDir = "/sys/class/power_supply"

// Compile-time interface check
var _ ports.DeviceStatusProvider = (*Provider)(nil)

// Provider reads connectivity and power state from the operating system.
// It is asked fresh on every decision cycle and caches nothing.
type Provider struct {
	interfaces     func() ([]net.Interface, error)
	addrs          func(iface net.Interface) ([]net.Addr, error)
	powerSupplyDir string
}

// NewProvider creates a Provider for the local machine
func NewProvider() *Provider {
	return &Provider{
		interfaces:     net.Interfaces,
		addrs:          func(iface net.Interface) ([]net.Addr, error) { return iface.Addrs() },
		powerSupplyDir: DefaultPowerSupplyDir,
	}
}

// Status reports whether the machine is online and on external power
func (p *Provider) Status(ctx context.Context) (domain.DeviceStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.DefaultDeviceStatus, err
	}

	status := domain.DeviceStatus{
		Online:  p.online(),
		PowerOn: p.powerOn(),
	}
	logging.Logger.Debug("Device status", "online", status.Online, "power_on", status.PowerOn)
	return status, nil
}

func (p *Provider) online() bool {
	ifaces, err := p.interfaces()
	if err != nil {
		logging.Logger.Warn("Failed to list network interfaces, assuming online", "error", err)
		return true
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := p.addrs(iface)
		if err != nil {
			continue
		}
		if len(addrs) > 0 {
			return true
		}
	}
	return false
}

// powerOn is true when a mains adapter is online. Without any power supply
// information the machine is assumed to be plugged in.
func (p *Provider) powerOn() bool {
	entries, err := os.ReadDir(p.powerSupplyDir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Logger.Debug("Failed to read power supplies", "error", err)
		}
		return true
	}

	sawMains := false
	discharging := false
	for _, e := range entries {
		dir := filepath.Join(p.powerSupplyDir, e.Name())
		switch readAttr(dir, "type") {
		case "Mains", "USB":
			sawMains = true
			if readAttr(dir, "online") == "1" {
				return true
			}
		case "Battery":
			if readAttr(dir, "status") == "Discharging" {
				discharging = true
			}
		}
	}

	if sawMains || discharging {
		return false
	}
	return true
}

func readAttr(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
