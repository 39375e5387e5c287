package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const msgZoneChanged = "zone_changed"

type ZonesPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewZonesPubSub(rdb *redis.Client) *ZonesPubSub {
	return &ZonesPubSub{
		rdb:     rdb,
		channel: ChannelZonesChanged(),
	}
}

type zoneChangedMsg struct {
	Type   string   `json:"type"`
	Zone   string   `json:"zone"`
	Dates  []string `json:"dates"`
	TsUnix int64    `json:"ts_unix"`
}

func (p *ZonesPubSub) PublishZoneChanged(ctx context.Context, change domain.ZoneChange) error {
	dates := make([]string, len(change.Dates))
	for i, d := range change.Dates {
		dates[i] = domain.FormatDate(d)
	}

	msg := zoneChangedMsg{
		Type:   msgZoneChanged,
		Zone:   string(change.Zone),
		Dates:  dates,
		TsUnix: time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks delivering zone changes to handler until ctx is done.
// Malformed messages are skipped.
func (p *ZonesPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, change domain.ZoneChange)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			change, ok := decodeZoneChanged(m.Payload)
			if ok {
				handler(ctx, change)
			}
		}
	}
}

func decodeZoneChanged(payload string) (domain.ZoneChange, bool) {
	var msg zoneChangedMsg
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return domain.ZoneChange{}, false
	}

	if msg.Type != msgZoneChanged || msg.Zone == "" {
		return domain.ZoneChange{}, false
	}

	change := domain.ZoneChange{Zone: domain.Zone(msg.Zone)}
	for _, s := range msg.Dates {
		d, err := domain.ParseDate(s)
		if err != nil {
			return domain.ZoneChange{}, false
		}
		change.Dates = append(change.Dates, d)
	}

	return change, true
}
