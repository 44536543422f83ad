package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seagrayinc/goapt/internal/config"
	"github.com/seagrayinc/goapt/internal/logging"
	"github.com/seagrayinc/goapt/internal/metrics"
	"github.com/seagrayinc/goapt/internal/port"
	"github.com/seagrayinc/goapt/internal/usb"
	"github.com/seagrayinc/goapt/pkg/kdc101"
)

const historyFile = ".aptctl_history"

func main() {
	configPath := flag.String("config", "", "Path to TOML config")
	device := flag.String("device", "", "Serial device, overrides the config file")
	serial := flag.String("serial", "", "Controller serial number, overrides the config file")
	list := flag.Bool("list", false, "List connected controllers and exit")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	logging.ConfigureRuntime()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *list {
		if err := listDevices(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("listing controllers")
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("config error")
		}
	}
	if *device != "" {
		cfg.Device.Port = *device
	}
	if *serial != "" {
		cfg.Device.Serial = *serial
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	if err := run(ctx, cfg, flag.Args()); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(ctx context.Context, cfg config.Config, args []string) error {
	path, err := resolvePort(cfg.Device)
	if err != nil {
		return err
	}

	portCfg := port.DefaultConfig(path)
	portCfg.Baud = cfg.Device.Baud
	ctrl, err := kdc101.Open(portCfg,
		kdc101.WithDestination(cfg.Protocol.Destination),
		kdc101.WithSource(cfg.Protocol.Source),
		kdc101.WithReplyTimeout(cfg.Protocol.ReplyTimeout),
		kdc101.WithMaxPending(cfg.Protocol.MaxPending),
		kdc101.WithPollInterval(cfg.Protocol.PollInterval),
	)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer ctrl.Close()

	info, err := ctrl.Info(ctx)
	if err != nil {
		return fmt.Errorf("identify controller on %s: %w", path, err)
	}
	if cfg.Device.Serial != "" && strconv.FormatUint(uint64(info.SerialNumber), 10) != cfg.Device.Serial {
		return fmt.Errorf("controller on %s has serial %d, want %s", path, info.SerialNumber, cfg.Device.Serial)
	}
	log.Info().
		Str("port", path).
		Uint32("serial", info.SerialNumber).
		Str("model", info.ModelNumber).
		Str("firmware", info.FirmwareVersion.String()).
		Msg("connected")

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr)
	}

	if err := ctrl.Send(ctx, kdc101.StartUpdateMessages()); err != nil {
		return err
	}
	go func() {
		if err := ctrl.KeepAlive(ctx, cfg.Protocol.KeepAlive); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("keepalive stopped")
		}
	}()
	defer func() {
		_ = ctrl.Send(context.Background(), kdc101.StopUpdateMessages())
		_ = ctrl.Send(context.Background(), kdc101.Disconnect())
	}()

	s := &session{ctrl: ctrl, ch: kdc101.Channel(cfg.Protocol.Channel), out: os.Stdout}
	if len(args) > 0 {
		return s.run(ctx, args[0], args[1:])
	}
	return s.shell(ctx)
}

func resolvePort(dev config.DeviceConfig) (string, error) {
	if dev.Port != "" {
		return dev.Port, nil
	}
	if dev.Serial != "" {
		return usb.PortFor(dev.Serial)
	}

	infos, err := usb.Enumerate()
	if err != nil {
		return "", err
	}
	switch len(infos) {
	case 0:
		return "", errors.New("no controller connected")
	case 1:
		return usb.PortFor(infos[0].Serial)
	default:
		return "", fmt.Errorf("%d controllers connected, pick one with -serial", len(infos))
	}
}

func listDevices(w io.Writer) error {
	infos, err := usb.Enumerate()
	if err != nil {
		return err
	}
	for _, info := range infos {
		path, err := usb.PortFor(info.Serial)
		if err != nil {
			path = "-"
		}
		fmt.Fprintf(w, "%-10s %-24s %s\n", info.Serial, info.Product, path)
	}
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics server stopped")
	}
}

func (s *session) shell(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) (c []string) {
		for _, cmd := range cliCommands {
			if strings.HasPrefix(cmd.Name, strings.ToLower(input)) {
				c = append(c, cmd.Name)
			}
		}
		return
	})

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(s.out, `Interactive mode, type "help" for commands, Ctrl-D to quit.`)
	for ctx.Err() == nil {
		input, err := line.Prompt("apt> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		tokens := strings.Fields(input)
		if tokens[0] == "quit" || tokens[0] == "exit" {
			return nil
		}
		if err := s.run(ctx, tokens[0], tokens[1:]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return nil
}
