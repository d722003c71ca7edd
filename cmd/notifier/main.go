// Бинарь notifier - воркер уведомлений владельцев лодок.
// Подписывается на события booking.confirmed и оповещает владельца
// о новом бронировании. Уведомления не участвуют в корректности
// реконсиляции: воркер можно останавливать и запускать независимо
// от основного сервиса.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m04kA/BCM-BookingService/internal/config"
	"github.com/m04kA/BCM-BookingService/internal/events"
	"github.com/m04kA/BCM-BookingService/pkg/logger"
	"github.com/m04kA/BCM-BookingService/pkg/mq"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.Events.Enabled {
		log.Fatal("Notifier requires events.enabled=true in config.toml")
	}

	log.Info("Starting BCM-BookingService notifier...")

	consumer, err := mq.NewConsumer(
		cfg.Events.URL,
		cfg.Events.Exchange,
		cfg.Events.Queue,
		[]string{events.RoutingKeyBookingConfirmed},
	)
	if err != nil {
		log.Fatal("Failed to connect to message broker: %v", err)
	}
	defer consumer.Close()

	log.Info("Consumer connected (exchange=%s, queue=%s)", cfg.Events.Exchange, cfg.Events.Queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries, err := consumer.Deliveries(ctx)
	if err != nil {
		log.Fatal("Failed to start consuming: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			log.Info("Shutting down notifier...")
			cancel()
			return

		case d, ok := <-deliveries:
			if !ok {
				log.Fatal("Delivery channel closed, broker connection lost")
			}

			var event events.BookingConfirmed
			if err := json.Unmarshal(d.Body, &event); err != nil {
				// Битое событие передоставкой не исправить
				log.Error("Failed to unmarshal event, dropping: %v", err)
				_ = d.Ack(false)
				continue
			}

			notifyOwner(log, event.Data)
			_ = d.Ack(false)
		}
	}
}

// notifyOwner оповещает владельца лодки о подтверждённом бронировании.
// Пока что канал доставки - лог процесса; почтовый транспорт
// подключается здесь, не трогая пайплайн событий.
func notifyOwner(log *logger.Logger, data events.BookingConfirmedData) {
	if data.OwnerEmail == "" {
		log.Warn("Booking %s confirmed, but owner %s has no email on file", data.BookingID, data.OwnerID)
		return
	}

	log.Info("Notify %s: boat %q booked for %s %s by user %s (%.2f %s), booking %s",
		data.OwnerEmail, data.BoatName, data.Date, data.Slot, data.UserID,
		data.Amount, data.Currency, data.BookingID)
}
