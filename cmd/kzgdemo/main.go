package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tuneinsight/lattigo/v4/utils"

	"KZG-Commitment/curve"
	"KZG-Commitment/field"
	"KZG-Commitment/kzg"
	"KZG-Commitment/poly"
)

func main() {
	var (
		maxDegree = flag.Int("degree", 2, "maximum polynomial degree the SRS supports")
		zValue    = flag.Uint64("z", 3, "evaluation point for the opening")
		seed      = flag.String("seed", "", "PRNG key for a reproducible SRS (empty = fresh randomness)")
	)
	flag.Parse()

	log.Println("[kzg-cli] starting commitment demo")

	c, err := curve.Toy101()
	if err != nil {
		log.Fatalf("curve setup: %v", err)
	}
	log.Printf("[kzg-cli] curve y^2 = x^3 + 3 over F_%d, subgroup order %d", c.Modulus(), c.SubgroupOrder())

	var prng utils.PRNG
	if *seed != "" {
		prng, err = utils.NewKeyedPRNG([]byte(*seed))
	} else {
		prng, err = utils.NewPRNG()
	}
	if err != nil {
		log.Fatalf("prng: %v", err)
	}

	srs, err := kzg.Setup(c, *maxDegree, prng)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	fp := srs.Fingerprint()
	log.Printf("[kzg-cli] SRS built: %d G1 powers, fingerprint %x", len(srs.SetupG1()), fp)

	// Demo polynomial: p(x) = 1 + 2x.
	p, err := poly.FromValues(c.Modulus(), 1, 2)
	if err != nil {
		log.Fatalf("build polynomial: %v", err)
	}
	log.Printf("[kzg-cli] polynomial %s", p)

	com, err := srs.Commit(p)
	if err != nil {
		log.Fatalf("commit: %v", err)
	}
	log.Printf("[kzg-cli] commitment %s", com)

	z, err := field.New(*zValue, c.Modulus())
	if err != nil {
		log.Fatalf("evaluation point: %v", err)
	}
	y, proof, err := srs.Open(p, z)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	log.Printf("[kzg-cli] opened at z=%d: y=%d, proof %s", z.Value(), y.Value(), proof)

	ok, err := srs.Verify(com, z, y, proof)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	log.Printf("[kzg-cli] verify: %v", ok)

	fmt.Println("[kzg-cli] done")
}
