package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/seagrayinc/goapt/pkg/kdc101"
)

type session struct {
	ctrl *kdc101.Controller
	ch   kdc101.Channel
	out  io.Writer
}

type cliCommand struct {
	Name        string
	Usage       string
	Description string
	MinArgs     int
	MaxArgs     int
	Handler     func(ctx context.Context, s *session, args []string) error
}

var cliCommands []cliCommand

func init() {
	cliCommands = []cliCommand{
		{"help", "help", "List commands", 0, 0, cmdHelp},
		{"info", "info", "Show hardware information", 0, 0, cmdInfo},
		{"status", "status", "Show position, velocity and status flags", 0, 0, cmdStatus},
		{"pos", "pos", "Show the position counter", 0, 0, cmdPosition},
		{"vel", "vel [min accel max]", "Show or set the velocity profile", 0, 3, cmdVelocity},
		{"identify", "identify", "Flash the front panel", 0, 0, cmdIdentify},
		{"enable", "enable", "Enable the motor channel", 0, 0, cmdEnable(true)},
		{"disable", "disable", "Disable the motor channel", 0, 0, cmdEnable(false)},
		{"home", "home", "Home the stage and wait", 0, 0, cmdHome},
		{"move", "move <position>", "Move to an absolute position and wait", 1, 1, cmdMove},
		{"moverel", "moverel <distance>", "Move by a relative distance and wait", 1, 1, cmdMoveRelative},
		{"jog", "jog fwd|back", "Jog one step and wait", 1, 1, cmdJog},
		{"stop", "stop [abrupt|profiled]", "Stop the current move", 0, 1, cmdStop},
		{"quit", "quit", "Leave the shell", 0, 0, nil},
	}
}

func (s *session) run(ctx context.Context, name string, args []string) error {
	for _, cmd := range cliCommands {
		if cmd.Name != name || cmd.Handler == nil {
			continue
		}
		if len(args) < cmd.MinArgs || len(args) > cmd.MaxArgs {
			return fmt.Errorf("usage: %s", cmd.Usage)
		}
		return cmd.Handler(ctx, s, args)
	}
	return fmt.Errorf("unknown command %q", name)
}

func cmdHelp(_ context.Context, s *session, _ []string) error {
	for _, c := range cliCommands {
		fmt.Fprintf(s.out, "  %-24s %s\n", c.Usage, c.Description)
	}
	return nil
}

func cmdInfo(ctx context.Context, s *session, _ []string) error {
	info, err := s.ctrl.Info(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "serial:   %d\n", info.SerialNumber)
	fmt.Fprintf(s.out, "model:    %s\n", info.ModelNumber)
	fmt.Fprintf(s.out, "firmware: %s\n", info.FirmwareVersion)
	fmt.Fprintf(s.out, "hardware: %d\n", info.HardwareVersion)
	fmt.Fprintf(s.out, "channels: %d\n", info.Channels)
	if info.Notes != "" {
		fmt.Fprintf(s.out, "notes:    %s\n", info.Notes)
	}
	return nil
}

func cmdStatus(ctx context.Context, s *session, _ []string) error {
	st, err := s.ctrl.Status(ctx, s.ch)
	if err != nil {
		return err
	}
	printStatus(s.out, st)
	return nil
}

func printStatus(w io.Writer, st kdc101.StatusUpdate) {
	fmt.Fprintf(w, "position: %d  velocity: %d  current: %d\n", st.Position, st.Velocity, st.MotorCurrent)
	fmt.Fprintf(w, "status:   %s\n", st.Status)
}

func cmdPosition(ctx context.Context, s *session, _ []string) error {
	pos, err := s.ctrl.Position(ctx, s.ch)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, pos)
	return nil
}

func cmdVelocity(ctx context.Context, s *session, args []string) error {
	switch len(args) {
	case 0:
	case 3:
		var vals [3]int32
		for i, a := range args {
			v, err := parseCounts(a)
			if err != nil {
				return err
			}
			vals[i] = v
		}
		p := kdc101.VelocityParams{Channel: s.ch, MinVelocity: vals[0], Acceleration: vals[1], MaxVelocity: vals[2]}
		if err := s.ctrl.SetVelocityParams(ctx, p); err != nil {
			return err
		}
	default:
		return fmt.Errorf("usage: vel [min accel max]")
	}

	v, err := s.ctrl.VelocityParams(ctx, s.ch)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "min: %d  accel: %d  max: %d\n", v.MinVelocity, v.Acceleration, v.MaxVelocity)
	return nil
}

func cmdIdentify(ctx context.Context, s *session, _ []string) error {
	return s.ctrl.Identify(ctx, s.ch)
}

func cmdEnable(enabled bool) func(context.Context, *session, []string) error {
	return func(ctx context.Context, s *session, _ []string) error {
		return s.ctrl.SetEnabled(ctx, s.ch, enabled)
	}
}

func cmdHome(ctx context.Context, s *session, _ []string) error {
	r, err := s.ctrl.Home(ctx, s.ch)
	if err != nil {
		return err
	}
	if _, err := r.Wait(ctx); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "homed")
	return nil
}

func cmdMove(ctx context.Context, s *session, args []string) error {
	pos, err := parseCounts(args[0])
	if err != nil {
		return err
	}
	r, err := s.ctrl.MoveAbsolute(ctx, s.ch, pos)
	if err != nil {
		return err
	}
	return waitMove(ctx, s.out, r)
}

func cmdMoveRelative(ctx context.Context, s *session, args []string) error {
	dist, err := parseCounts(args[0])
	if err != nil {
		return err
	}
	r, err := s.ctrl.MoveRelative(ctx, s.ch, dist)
	if err != nil {
		return err
	}
	return waitMove(ctx, s.out, r)
}

func cmdJog(ctx context.Context, s *session, args []string) error {
	var dir kdc101.Direction
	switch args[0] {
	case "fwd", "forward":
		dir = kdc101.Forward
	case "back", "backward":
		dir = kdc101.Backward
	default:
		return fmt.Errorf("usage: jog fwd|back")
	}
	r, err := s.ctrl.Jog(ctx, s.ch, dir)
	if err != nil {
		return err
	}
	return waitMove(ctx, s.out, r)
}

func cmdStop(ctx context.Context, s *session, args []string) error {
	mode := kdc101.StopProfiled
	if len(args) == 1 {
		switch args[0] {
		case "abrupt":
			mode = kdc101.StopAbrupt
		case "profiled":
		default:
			return fmt.Errorf("usage: stop [abrupt|profiled]")
		}
	}
	r, err := s.ctrl.Stop(ctx, s.ch, mode)
	if err != nil {
		return err
	}
	st, err := r.Wait(ctx)
	if err != nil {
		return err
	}
	printStatus(s.out, st.StatusUpdate)
	return nil
}

func waitMove(ctx context.Context, w io.Writer, r *kdc101.Reply[kdc101.MoveCompleted]) error {
	st, err := r.Wait(ctx)
	if err != nil {
		return err
	}
	printStatus(w, st.StatusUpdate)
	return nil
}

func parseCounts(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return int32(v), nil
}
