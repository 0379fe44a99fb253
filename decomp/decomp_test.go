package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/seqdecomp/decomp"
	"github.com/procflow/seqdecomp/model"
	"github.com/procflow/seqdecomp/simnet"
)

func scalarMember(p model.Port, name string) *simnet.Var {
	m, ok := p.Member(name)
	if !ok {
		return nil
	}

	return m.Scalar.(*simnet.Var)
}

func indexedMember(p model.Port, name, index string) *simnet.Var {
	m, ok := p.Member(name)
	if !ok {
		return nil
	}

	return m.Indexed[index].(*simnet.Var)
}

func TestRun_AcyclicTwoUnitsPropagatesForward(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddScalar("x")

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddScalar("x")
	outB := uB.AddPort(simnet.NewPort("out"))
	outB.AddScalar("y")

	_, err := simnet.Connect(uA, uB, outA, inB, "s1")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	for _, u := range []*simnet.Unit{uA, uB} {
		for _, p := range u.Ports() {
			for _, a := range p.Dests() {
				net.AddArc(a.(*simnet.Arc))
			}
		}
	}

	fn := func(u model.Unit) error {
		switch u.Name() {
		case "A":
			scalarMember(u.Ports()[0], "x").Set(5)
		case "B":
			x, _ := scalarMember(u.Ports()[0], "x").Value()
			scalarMember(u.Ports()[1], "y").Set(x * 2)
		}

		return nil
	}

	err = decomp.Run(net, fn)
	require.NoError(t, err)

	y, ok := scalarMember(outB, "y").Value()
	require.True(t, ok)
	assert.Equal(t, float64(10), y)
}

func buildRecycleLoop(t *testing.T) (*simnet.Network, *simnet.Unit, *simnet.Unit) {
	t.Helper()

	uA := simnet.NewUnit("A")
	inA := uA.AddPort(simnet.NewPort("in"))
	inA.AddScalar("z")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddScalar("z")

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddScalar("z")
	outB := uB.AddPort(simnet.NewPort("out"))
	outB.AddScalar("z")

	_, err := simnet.Connect(uA, uB, outA, inB, "ab")
	require.NoError(t, err)
	_, err = simnet.Connect(uB, uA, outB, inA, "ba")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	for _, u := range []*simnet.Unit{uA, uB} {
		for _, p := range u.Ports() {
			for _, a := range p.Dests() {
				net.AddArc(a.(*simnet.Arc))
			}
		}
	}

	return net, uA, uB
}

func recycleFn(uA, uB *simnet.Unit) model.Function {
	return func(u model.Unit) error {
		switch u.Name() {
		case uA.Name():
			z, _ := scalarMember(u.Ports()[0], "z").Value()
			scalarMember(u.Ports()[1], "z").Set(0.5*z + 10)
		case uB.Name():
			z, _ := scalarMember(u.Ports()[0], "z").Value()
			scalarMember(u.Ports()[1], "z").Set(z)
		}

		return nil
	}
}

func TestRun_RecycleLoopConvergesWithWegstein(t *testing.T) {
	net, uA, uB := buildRecycleLoop(t)

	err := decomp.Run(net, recycleFn(uA, uB), decomp.WithTearMethod(decomp.TearWegstein))
	require.NoError(t, err)

	zA, ok := scalarMember(uA.Ports()[1], "z").Value()
	require.True(t, ok)
	zB, ok := scalarMember(uB.Ports()[1], "z").Value()
	require.True(t, ok)

	assert.InDelta(t, 20, zA, 1e-3)
	assert.InDelta(t, 20, zB, 1e-3)
}

func TestRun_RecycleLoopConvergesWithDirectSubstitution(t *testing.T) {
	net, uA, uB := buildRecycleLoop(t)

	err := decomp.Run(net, recycleFn(uA, uB), decomp.WithTearMethod(decomp.TearDirect), decomp.WithIterLim(200))
	require.NoError(t, err)

	zA, ok := scalarMember(uA.Ports()[1], "z").Value()
	require.True(t, ok)
	assert.InDelta(t, 20, zA, 1e-3)
}

func TestRun_NoTearSetWithCyclesAndSolveTearsDisabledFails(t *testing.T) {
	net, uA, uB := buildRecycleLoop(t)

	err := decomp.Run(net, recycleFn(uA, uB), decomp.WithSolveTears(false))
	assert.ErrorIs(t, err, decomp.ErrNoTearSet)
}

func TestRun_ExtensiveMembersAreSummedAcrossFeedingArcs(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddExtensive("flow")

	uB := simnet.NewUnit("B")
	outB := uB.AddPort(simnet.NewPort("out"))
	outB.AddExtensive("flow")

	uC := simnet.NewUnit("C")
	inC := uC.AddPort(simnet.NewPort("in"))
	inC.AddExtensive("flow")

	_, err := simnet.Connect(uA, uC, outA, inC, "ac")
	require.NoError(t, err)
	_, err = simnet.Connect(uB, uC, outB, inC, "bc")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	for _, u := range []*simnet.Unit{uA, uB} {
		for _, p := range u.Ports() {
			for _, a := range p.Dests() {
				net.AddArc(a.(*simnet.Arc))
			}
		}
	}

	var total float64
	fn := func(u model.Unit) error {
		switch u.Name() {
		case "A":
			scalarMember(u.Ports()[0], "flow").Set(4)
		case "B":
			scalarMember(u.Ports()[0], "flow").Set(6)
		case "C":
			v, _ := scalarMember(u.Ports()[0], "flow").Value()
			total = v
		}

		return nil
	}

	require.NoError(t, decomp.Run(net, fn))
	assert.Equal(t, float64(10), total)
}

func TestRun_WithGuessSeedsNamedTearStream(t *testing.T) {
	net, uA, uB := buildRecycleLoop(t)

	err := decomp.Run(net, recycleFn(uA, uB), decomp.WithGuess("B.in.z", 19))
	require.NoError(t, err)

	zA, ok := scalarMember(uA.Ports()[1], "z").Value()
	require.True(t, ok)
	assert.InDelta(t, 20, zA, 1e-3)
}

func TestRun_IndexedMembersPropagateForward(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	fracA := outA.AddIndexed("frac", []string{"c1", "c2"})

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddIndexed("frac", []string{"c1", "c2"})

	_, err := simnet.Connect(uA, uB, outA, inB, "ab")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	for _, a := range outA.Dests() {
		net.AddArc(a.(*simnet.Arc))
	}

	fn := func(u model.Unit) error {
		if u.Name() == "A" {
			fracA["c1"].Set(0.3)
			fracA["c2"].Set(0.7)
		}

		return nil
	}

	require.NoError(t, decomp.Run(net, fn))

	c1, ok := indexedMember(inB, "frac", "c1").Value()
	require.True(t, ok)
	c2, ok := indexedMember(inB, "frac", "c2").Value()
	require.True(t, ok)
	assert.Equal(t, 0.3, c1)
	assert.Equal(t, 0.7, c2)
}

func TestRun_WithIndexedGuessSeedsIndexedTearStream(t *testing.T) {
	uA := simnet.NewUnit("A")
	inA := uA.AddPort(simnet.NewPort("in"))
	inA.AddIndexed("frac", []string{"c1"})
	outA := uA.AddPort(simnet.NewPort("out"))
	outFracA := outA.AddIndexed("frac", []string{"c1"})

	uB := simnet.NewUnit("B")
	inB := uB.AddPort(simnet.NewPort("in"))
	inB.AddIndexed("frac", []string{"c1"})
	outB := uB.AddPort(simnet.NewPort("out"))
	outFracB := outB.AddIndexed("frac", []string{"c1"})

	_, err := simnet.Connect(uA, uB, outA, inB, "ab")
	require.NoError(t, err)
	_, err = simnet.Connect(uB, uA, outB, inA, "ba")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	for _, u := range []*simnet.Unit{uA, uB} {
		for _, p := range u.Ports() {
			for _, a := range p.Dests() {
				net.AddArc(a.(*simnet.Arc))
			}
		}
	}

	fn := func(u model.Unit) error {
		switch u.Name() {
		case "A":
			c1, _ := indexedMember(inA, "frac", "c1").Value()
			outFracA["c1"].Set(0.5*c1 + 0.3)
		case "B":
			c1, _ := indexedMember(inB, "frac", "c1").Value()
			outFracB["c1"].Set(c1)
		}

		return nil
	}

	err = decomp.Run(net, fn, decomp.WithIndexedGuess("B.in.frac", map[string]float64{"c1": 0.5}))
	require.NoError(t, err)

	c1, ok := indexedMember(inA, "frac", "c1").Value()
	require.True(t, ok)
	assert.InDelta(t, 0.6, c1, 1e-3)
}

func TestRun_InvalidTearMethodRejected(t *testing.T) {
	net, uA, uB := buildRecycleLoop(t)

	err := decomp.Run(net, recycleFn(uA, uB), decomp.WithTearMethod(decomp.TearMethod("bogus")))
	assert.ErrorIs(t, err, decomp.ErrInvalidOption)
}

func TestRun_OverdeterminedArcRejected(t *testing.T) {
	uA := simnet.NewUnit("A")
	outA := uA.AddPort(simnet.NewPort("out"))
	outA.AddScalar("x")

	uB := simnet.NewUnit("B")
	outB := uB.AddPort(simnet.NewPort("out"))
	outB.AddScalar("x")

	uC := simnet.NewUnit("C")
	inC := uC.AddPort(simnet.NewPort("in"))
	inC.AddScalar("x")

	_, err := simnet.Connect(uA, uC, outA, inC, "ac")
	require.NoError(t, err)
	_, err = simnet.Connect(uB, uC, outB, inC, "bc")
	require.NoError(t, err)

	net := simnet.NewNetwork()
	for _, u := range []*simnet.Unit{uA, uB} {
		for _, p := range u.Ports() {
			for _, a := range p.Dests() {
				net.AddArc(a.(*simnet.Arc))
			}
		}
	}

	fn := func(u model.Unit) error {
		switch u.Name() {
		case "A":
			scalarMember(u.Ports()[0], "x").Set(4)
		case "B":
			scalarMember(u.Ports()[0], "x").Set(5)
		}

		return nil
	}

	err = decomp.Run(net, fn)
	assert.ErrorIs(t, err, decomp.ErrOverdeterminedArc)
}
