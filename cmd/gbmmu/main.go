// Command gbmmu loads a program image into the memory router and
// inspects the resulting address space.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gbmmu/internal/boot"
	"github.com/thelolagemann/gbmmu/internal/interrupts"
	"github.com/thelolagemann/gbmmu/internal/joypad"
	"github.com/thelolagemann/gbmmu/internal/mmu"
	"github.com/thelolagemann/gbmmu/internal/ppu"
	"github.com/thelolagemann/gbmmu/internal/types"
	"github.com/thelolagemann/gbmmu/pkg/inspect"
	"github.com/thelolagemann/gbmmu/pkg/log"
	"github.com/thelolagemann/gbmmu/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	noBoot := flag.Bool("no-boot", false, "Start with the boot rom unmapped")
	bootRegister := flag.Bool("boot-register", false, "Unmap the boot rom on any write to 0xFF50")
	printMap := flag.Bool("map", false, "Print the memory map")
	dump := flag.String("dump", "", "Hex dump a range of memory, as start:length (hex)")
	dmaSource := flag.String("dma", "", "Start an OAM DMA transfer from the given page (hex)")
	serve := flag.String("serve", "", "Serve memory snapshots over websocket on the given address")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := logrus.InfoLevel
	if *debug {
		level = logrus.DebugLevel
	}
	logger := log.NewWithOutput(os.Stderr, level)

	if *printMap {
		for _, span := range mmu.MemoryMap() {
			fmt.Println(span)
		}
	}

	opts := []mmu.Opt{mmu.WithLogger(logger)}
	if *bootROM != "" {
		b, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Fatal(err.Error())
		}
		rom, err := boot.LoadBootROM(b)
		if err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, mmu.WithBootROM(rom))
	}
	if *noBoot {
		opts = append(opts, mmu.NoBootROM())
	}
	if *bootRegister {
		opts = append(opts, mmu.WithBootDisableRegister())
	}

	irq := interrupts.NewService()
	video := ppu.New()
	m := mmu.New(video, irq, joypad.New(irq.Request), opts...)
	logger.Debugf("boot rom: %s (%s)", m.BootROM().Model(), m.BootROM().Checksum())

	if *romFile != "" {
		if err := loadProgram(m, *romFile); err != nil {
			logger.Fatal(err.Error())
		}
	}

	if *dmaSource != "" {
		page, err := strconv.ParseUint(*dmaSource, 16, 8)
		if err != nil {
			logger.Fatal(fmt.Sprintf("invalid dma source %q: %v", *dmaSource, err))
		}
		m.WriteByte(types.DMA, uint8(page))
		tiles, sprites := video.Updates()
		logger.Infof("dma from %02X00: %d tile updates, %d sprite updates", page, tiles, sprites)
	}

	if *dump != "" {
		start, length, err := parseRange(*dump)
		if err != nil {
			logger.Fatal(err.Error())
		}
		data := make([]byte, length)
		for i := range data {
			data[i] = m.ReadByte(start + uint16(i))
		}
		fmt.Print(hex.Dump(data))
	}

	if *serve != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		hub := inspect.NewHub(inspect.WithLogger(logger), inspect.WithCompression(4))
		go hub.Run(ctx)

		srv := &http.Server{Addr: *serve, Handler: hub.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Errorf("inspect server: %v", err)
				stop()
			}
		}()
		logger.Infof("serving snapshots on ws://%s", *serve)

		// snapshots are taken here, on the goroutine that owns the MMU
		ticker := time.NewTicker(time.Second / 10)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				hub.Publish(inspect.Capture(m, inspect.DefaultWindows...))
			case <-ctx.Done():
				srv.Close()
				return
			}
		}
	}
}

// loadProgram reads filename, decompressing it if needed, and loads
// it as the program image. The MMU logs the cartridge header.
func loadProgram(m *mmu.MMU, filename string) error {
	rom, err := utils.LoadFile(filename)
	if err != nil {
		return err
	}
	return m.Load(rom)
}

// parseRange parses a start:length pair of hex numbers.
func parseRange(s string) (uint16, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q, expected start:length", s)
	}
	start, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	length, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range length %q: %w", parts[1], err)
	}
	if start+length > 0x10000 {
		return 0, 0, fmt.Errorf("range %q runs past the end of the address space", s)
	}
	return uint16(start), int(length), nil
}
