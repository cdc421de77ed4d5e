package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/kpfaulkner/geom2d/geom"
	log "github.com/sirupsen/logrus"
)

func main() {
	point := flag.String("p", "", "point, e.g. \"1,2\"")
	op := flag.String("op", "add", "operation: add, sub, addscalar, subscalar, mul, vec, size")
	operand := flag.String("v", "", "operand: a point for add/sub, a number for the scalar ops")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *point == "" {
		fmt.Printf("a point must be specified with -p\n")
		os.Exit(1)
	}

	result, err := evaluate(*point, *op, *operand)
	if err != nil {
		log.Errorf("Error evaluating %s: %v", *op, err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func evaluate(point string, op string, operand string) (string, error) {
	p, err := geom.ParsePoint(point)
	if err != nil {
		return "", err
	}
	log.Debugf("parsed point %v", p)

	switch op {
	case "vec":
		v := p.Vec2d()
		return fmt.Sprintf("[%g, %g]", v[0], v[1]), nil
	case "size":
		return p.Size().String(), nil
	case "add", "sub":
		q, err := geom.ParsePoint(operand)
		if err != nil {
			return "", fmt.Errorf("operand: %w", err)
		}
		if op == "add" {
			return p.Add(q).String(), nil
		}
		return p.Sub(q).String(), nil
	case "addscalar", "subscalar", "mul":
		s, err := strconv.ParseFloat(operand, 64)
		if err != nil {
			return "", fmt.Errorf("scalar operand %q: %w", operand, err)
		}
		switch op {
		case "addscalar":
			return p.AddScalar(s).String(), nil
		case "subscalar":
			return p.SubScalar(s).String(), nil
		default:
			return p.Mul(s).String(), nil
		}
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}
