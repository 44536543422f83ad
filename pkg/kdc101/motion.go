package kdc101

import (
	"context"
)

func (c *Controller) Identify(ctx context.Context, ch Channel) error {
	return c.Send(ctx, Identify(ch))
}

func (c *Controller) SetEnabled(ctx context.Context, ch Channel, enabled bool) error {
	state := Disabled
	if enabled {
		state = Enabled
	}
	cmd, err := SetChannelEnableState(ch, state)
	if err != nil {
		return err
	}
	return c.Send(ctx, cmd)
}

// Info requests and waits for the hardware information block.
func (c *Controller) Info(ctx context.Context) (HardwareInfo, error) {
	return request(ctx, c, RequestInfo())
}

// Status requests and waits for a status update of ch.
func (c *Controller) Status(ctx context.Context, ch Channel) (StatusUpdate, error) {
	return request(ctx, c, RequestStatusUpdate(ch))
}

func (c *Controller) Position(ctx context.Context, ch Channel) (int32, error) {
	p, err := request(ctx, c, RequestPosition(ch))
	return p.Position, err
}

func (c *Controller) VelocityParams(ctx context.Context, ch Channel) (VelocityParams, error) {
	return request(ctx, c, RequestVelocityParams(ch))
}

// SetVelocityParams writes the move profile of p.Channel.
func (c *Controller) SetVelocityParams(ctx context.Context, p VelocityParams) error {
	return c.Send(ctx, SetVelocityParams(p))
}

func (c *Controller) Home(ctx context.Context, ch Channel) (*Reply[MoveHomed], error) {
	return Do(ctx, c, MoveHome(ch))
}

func (c *Controller) MoveAbsolute(ctx context.Context, ch Channel, position int32) (*Reply[MoveCompleted], error) {
	return Do(ctx, c, MoveAbsolute(ch, position))
}

func (c *Controller) MoveRelative(ctx context.Context, ch Channel, distance int32) (*Reply[MoveCompleted], error) {
	return Do(ctx, c, MoveRelative(ch, distance))
}

func (c *Controller) Jog(ctx context.Context, ch Channel, dir Direction) (*Reply[MoveCompleted], error) {
	q, err := MoveJog(ch, dir)
	if err != nil {
		return nil, err
	}
	return Do(ctx, c, q)
}

// MoveVelocity starts a move at constant velocity. It runs until Stop.
func (c *Controller) MoveVelocity(ctx context.Context, ch Channel, dir Direction) error {
	cmd, err := MoveVelocity(ch, dir)
	if err != nil {
		return err
	}
	return c.Send(ctx, cmd)
}

func (c *Controller) Stop(ctx context.Context, ch Channel, mode StopMode) (*Reply[MoveStopped], error) {
	q, err := MoveStop(ch, mode)
	if err != nil {
		return nil, err
	}
	return Do(ctx, c, q)
}
