package doctor_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jasonwu001t/taicfg/config"
	"github.com/jasonwu001t/taicfg/internal/doctor"
)

var _ = Describe("Doctor", func() {
	var (
		tempDir      string
		settingsPath string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "doctor-test-*")
		Expect(err).NotTo(HaveOccurred())
		settingsPath = filepath.Join(tempDir, "settings.ini")
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	newResolver := func(content string) *config.Resolver {
		err := os.WriteFile(settingsPath, []byte(content), 0644)
		Expect(err).NotTo(HaveOccurred())
		return config.New(settingsPath, nil)
	}

	emptyResolver := func() *config.Resolver {
		return config.New(filepath.Join(tempDir, "missing.ini"), nil)
	}

	Describe("Providers", func() {
		It("should list every provider in sorted order", func() {
			names := doctor.Providers()
			Expect(names).To(Equal([]string{"alpaca", "bls", "dynamodb", "ib", "mysql", "openai", "redshift"}))
		})
	})

	Describe("Run", func() {
		Context("without ping", func() {
			It("should pass providers whose sections are complete", func() {
				r := newResolver(`
[mysql]
host = db.internal
user = tai
password = secret
database = marketdata
`)
				checks := doctor.Run(context.Background(), r, []string{"mysql"}, doctor.Options{}, nil)
				Expect(checks).To(HaveLen(1))
				Expect(checks[0].Provider).To(Equal("mysql"))
				Expect(checks[0].OK).To(BeTrue())
				Expect(checks[0].Stage).To(Equal(doctor.StageValidate))
			})

			It("should fail at the credentials stage when keys are missing", func() {
				checks := doctor.Run(context.Background(), emptyResolver(), []string{"mysql"}, doctor.Options{}, nil)
				Expect(checks[0].OK).To(BeFalse())
				Expect(checks[0].Stage).To(Equal(doctor.StageCredentials))
				Expect(checks[0].Error).To(ContainSubstring("mysql.host"))
			})

			It("should fail at the validate stage on bad values", func() {
				r := newResolver(`
[mysql]
host = db.internal
port = 99999
user = tai
password = secret
database = marketdata
`)
				checks := doctor.Run(context.Background(), r, []string{"mysql"}, doctor.Options{}, nil)
				Expect(checks[0].OK).To(BeFalse())
				Expect(checks[0].Stage).To(Equal(doctor.StageValidate))
			})

			It("should pass providers whose keys all have defaults", func() {
				checks := doctor.Run(context.Background(), emptyResolver(), []string{"bls", "ib"}, doctor.Options{}, nil)
				Expect(checks).To(HaveLen(2))
				for _, c := range checks {
					Expect(c.OK).To(BeTrue(), c.Provider)
				}
			})

			It("should check every provider when none are named", func() {
				checks := doctor.Run(context.Background(), emptyResolver(), nil, doctor.Options{}, nil)
				Expect(checks).To(HaveLen(len(doctor.Providers())))
			})

			It("should return results sorted by provider name", func() {
				checks := doctor.Run(context.Background(), emptyResolver(), []string{"openai", "alpaca", "ib"}, doctor.Options{}, nil)
				Expect(checks[0].Provider).To(Equal("alpaca"))
				Expect(checks[1].Provider).To(Equal("ib"))
				Expect(checks[2].Provider).To(Equal("openai"))
			})

			It("should mark unknown providers failed without dropping the rest", func() {
				checks := doctor.Run(context.Background(), emptyResolver(), []string{"ib", "etrade"}, doctor.Options{}, nil)
				Expect(checks).To(HaveLen(2))
				Expect(checks[0].Provider).To(Equal("etrade"))
				Expect(checks[0].OK).To(BeFalse())
				Expect(checks[0].Error).To(Equal("unknown provider"))
				Expect(checks[1].OK).To(BeTrue())
			})
		})

		Context("with ping", func() {
			It("should reach the ping stage and dial the gateway", func() {
				ln, err := net.Listen("tcp", "127.0.0.1:0")
				Expect(err).NotTo(HaveOccurred())
				defer ln.Close()

				go func() {
					conn, err := ln.Accept()
					if err == nil {
						conn.Close()
					}
				}()

				_, portStr, err := net.SplitHostPort(ln.Addr().String())
				Expect(err).NotTo(HaveOccurred())
				port, err := strconv.Atoi(portStr)
				Expect(err).NotTo(HaveOccurred())

				r := newResolver("[ib]\nhost = 127.0.0.1\nport = " + portStr + "\n")
				Expect(port).To(BeNumerically(">", 0))

				checks := doctor.Run(context.Background(), r, []string{"ib"}, doctor.Options{Ping: true, Timeout: 2 * time.Second}, nil)
				Expect(checks[0].Stage).To(Equal(doctor.StagePing))
				Expect(checks[0].OK).To(BeTrue())
			})

			It("should fail the ping stage for an unreachable gateway", func() {
				ln, err := net.Listen("tcp", "127.0.0.1:0")
				Expect(err).NotTo(HaveOccurred())
				_, portStr, err := net.SplitHostPort(ln.Addr().String())
				Expect(err).NotTo(HaveOccurred())
				Expect(ln.Close()).To(Succeed())

				r := newResolver("[ib]\nhost = 127.0.0.1\nport = " + portStr + "\n")

				checks := doctor.Run(context.Background(), r, []string{"ib"}, doctor.Options{Ping: true, Timeout: 2 * time.Second}, nil)
				Expect(checks[0].Stage).To(Equal(doctor.StagePing))
				Expect(checks[0].OK).To(BeFalse())
			})
		})
	})

	Describe("Watch", func() {
		It("should publish an immediate batch and stop on context cancel", func() {
			ctx, cancel := context.WithCancel(context.Background())
			batches := make(chan []doctor.Check, 10)

			done := make(chan struct{})
			go func() {
				defer close(done)
				doctor.Watch(ctx, emptyResolver(), []string{"ib"}, doctor.Options{}, time.Hour,
					func(checks []doctor.Check) { batches <- checks }, nil)
			}()

			Eventually(batches).Should(Receive(HaveLen(1)))
			cancel()
			Eventually(done).Should(BeClosed())
		})

		It("should publish again on each tick", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			batches := make(chan []doctor.Check, 10)
			go doctor.Watch(ctx, emptyResolver(), []string{"ib"}, doctor.Options{}, 20*time.Millisecond,
				func(checks []doctor.Check) { batches <- checks }, nil)

			Eventually(batches).Should(Receive())
			Eventually(batches).Should(Receive())
		})
	})
})
