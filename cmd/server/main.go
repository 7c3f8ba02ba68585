package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"spool/api/grpcserver"
	pb "spool/api/pb"

	"spool/domain/stack"
	"spool/infra/kafka"
	"spool/infra/outbox"
	"spool/infra/wal"
	"spool/jobs/broadcaster"
	"spool/service"
)

func main() {
	var (
		addr         = flag.String("addr", ":50051", "gRPC listen address")
		walDir       = flag.String("wal-dir", "./wal_data", "journal directory")
		outboxDir    = flag.String("outbox-dir", "./outbox_data", "outbox directory")
		strategy     = flag.String("strategy", "hazard", "reclamation strategy: hazard or counted")
		registrySize = flag.Int("registry-size", stack.DefaultRegistrySize, "hazard registry capacity")
		arenaSize    = flag.Int("arena-size", stack.DefaultArenaSize, "counted arena capacity")
		brokers      = flag.String("brokers", "", "comma-separated Kafka brokers (empty disables delivery)")
		deliverTopic = flag.String("deliver-topic", "spool.entries", "delivery topic")
		statsTopic   = flag.String("stats-topic", "spool.stats", "telemetry topic")
	)
	flag.Parse()

	// ---------------- Journal ----------------

	journal, err := wal.Open(wal.Config{
		Dir:         *walDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer journal.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(*outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Domain ----------------

	var sp service.Spool
	switch *strategy {
	case "hazard":
		sp = service.NewHazardSpool(stack.NewRegistry(*registrySize))
	case "counted":
		sp = service.NewCountedSpool(*arenaSize)
	default:
		log.Fatalf("unknown strategy %q", *strategy)
	}

	// ---------------- Service ----------------

	svc, err := service.NewSpoolService(sp, journal, ob, service.Config{})
	if err != nil {
		log.Fatalf("service init failed: %v", err)
	}
	defer svc.Close()

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *brokers != "" {
		brokerList := strings.Split(*brokers, ",")

		bc, err := broadcaster.New(ob, brokerList, *deliverTopic, 0)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		go bc.Run(ctx)

		telemetry := kafka.NewProducer(brokerList, *statsTopic)
		defer telemetry.Close()
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					payload, err := json.Marshal(svc.Stats())
					if err != nil {
						continue
					}
					if err := telemetry.Send(ctx, []byte("stats"), payload); err != nil {
						log.Printf("[telemetry] send failed: %v", err)
					}
				}
			}
		}()
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterSpoolServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Printf("🚀 Spool Engine running on %s (strategy=%s)\n", *addr, *strategy)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
