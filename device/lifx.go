package device

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.yhsif.com/lifxlan"
	"go.yhsif.com/lifxlan/light"
)

const lifxConnectTimeout = time.Second

type LifxBulb struct {
	light.Device
	label string // prevent need to contact device for logging
}

// ConnectLifx locates a bulb by host (ip:port) and mac address and
// retrieves its label and hardware version. Connection failures are
// returned rather than retried; devices are connected once at startup.
func ConnectLifx(label, host, mac string) (Device, error) {
	target, err := lifxlan.ParseTarget(mac)
	if err != nil {
		return nil, fmt.Errorf("%s: parse mac address: %w", label, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifxConnectTimeout)
	defer cancel()

	return wrapLifx(ctx, label, lifxlan.NewDevice(host, lifxlan.ServiceUDP, target))
}

func wrapLifx(ctx context.Context, label string, dev lifxlan.Device) (Device, error) {
	conn, err := dev.Dial()
	if err != nil {
		return nil, fmt.Errorf("%s: dial device: %w", label, err)
	}
	defer conn.Close()

	err = dev.Echo(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: echo device: %w", label, err)
	}

	bulb, err := light.Wrap(ctx, dev, false)
	if err != nil {
		return nil, fmt.Errorf("%s: device is not a light: %w", label, err)
	}

	err = bulb.GetHardwareVersion(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: get hardware version: %w", label, err)
	}

	if name := bulb.Label().String(); name != lifxlan.EmptyLabel {
		label = strings.ToLower(name)
	}

	return &LifxBulb{Device: bulb, label: label}, nil
}

// echo retries while the bulb is slow to answer
func (d *LifxBulb) echo(ctx context.Context, conn net.Conn) error {
	var err error
	for i := 0; i < defaultRetryLimit; i++ {
		err = d.Device.Echo(ctx, conn)
		if err == nil || !errors.Is(err, context.DeadlineExceeded) {
			break
		}

		time.Sleep(time.Duration(i+1) * defaultRetryBackoff)
	}

	return err
}

// Transition fades the bulb to color. The dark end of a curve has zero
// brightness and powers the bulb off. A bulb that is off is woken at
// zero brightness in the target hue and kelvin, then faded up, so it
// never flashes the color it held before it was switched off.
func (d *LifxBulb) Transition(color *Color, transition time.Duration) error {
	conn, err := d.Dial()
	if err != nil {
		return fmt.Errorf("%s: dial: %w", d.label, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	err = d.echo(ctx, conn)
	if err != nil {
		return fmt.Errorf("%s: echo device: %w", d.label, err)
	}

	if color.Brightness == 0 {
		err = d.SetLightPower(ctx, conn, lifxlan.PowerOff, transition, true)
		if err != nil {
			return fmt.Errorf("%s: power off: %w", d.label, err)
		}
		return nil
	}

	target := lifxlan.Color{
		Hue:        color.Hue,
		Saturation: color.Saturation,
		Brightness: color.Brightness,
		Kelvin:     color.Kelvin,
	}

	power, err := d.GetPower(ctx, conn)
	if err != nil {
		return fmt.Errorf("%s: get power: %w", d.label, err)
	}
	if !power.On() {
		err = d.wake(ctx, conn, target)
		if err != nil {
			return fmt.Errorf("%s: %w", d.label, err)
		}
	}

	err = d.SetColor(ctx, conn, &target, transition, true)
	if err != nil {
		return fmt.Errorf("%s: set color: %w", d.label, err)
	}

	return nil
}

// wake powers the bulb on in darkness
func (d *LifxBulb) wake(ctx context.Context, conn net.Conn, target lifxlan.Color) error {
	dark := target
	dark.Brightness = 0

	err := d.SetColor(ctx, conn, &dark, 0, true)
	if err != nil {
		return fmt.Errorf("darken: %w", err)
	}

	err = d.SetPower(ctx, conn, lifxlan.PowerOn, true)
	if err != nil {
		return fmt.Errorf("power on: %w", err)
	}

	return nil
}

// Power reports whether the bulb is on
func (d *LifxBulb) Power() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	power, err := d.GetPower(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%s: get power: %w", d.label, err)
	}
	return power.On(), nil
}

func (d *LifxBulb) Label() string {
	return d.label
}

func (d *LifxBulb) String() string {
	return d.Device.HardwareVersion().String()
}
