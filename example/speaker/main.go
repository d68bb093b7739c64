package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/betterrecords"
	"github.com/oomph-ac/betterrecords/settings"
	"github.com/oomph-ac/betterrecords/world/block"
)

type placer struct {
	yaw float64
}

func (p placer) Rotation() cube.Rotation {
	return cube.Rotation{p.yaw, 0}
}

func main() {
	const path = "config.toml"
	if err := settings.SaveDefault(path); err == nil {
		fmt.Printf("created default settings at %s\n", path)
	}
	s, err := settings.Load(path)
	if err != nil {
		panic(err)
	}
	level, err := s.LogLevel()
	if err != nil {
		panic(err)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Sentry.DSN}); err != nil {
			log.Error("failed to initialise sentry", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	defer func() {
		if v := recover(); v != nil {
			sentry.CurrentHub().Recover(v)
			sentry.Flush(2 * time.Second)
			panic(v)
		}
	}()

	records, err := betterrecords.New(s, log)
	if err != nil {
		panic(err)
	}
	for _, k := range records.Assets().Models() {
		loc, _ := records.Assets().Model(k)
		log.Info("item model", "item", k.String(), "model", loc.String())
	}

	w := records.World()
	for i, stack := range records.CreativeItems() {
		pos := cube.Pos{i * 2, 64, 0}
		if !w.PlaceItem(pos, stack, placer{yaw: float64(i) * 90}) {
			log.Warn("could not place speaker", "pos", pos)
			continue
		}
		b := w.Block(pos).(block.Speaker)
		info := b.BreakInfo()
		log.Info("placed speaker", "pos", pos, "size", b.Size.String(), "hardness", info.Hardness, "resistance", info.BlastResistance)
	}
}
