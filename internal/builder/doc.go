/*
Package builder turns a network descriptor (config.Net) into a sealed
computation graph.

Construction is a single pass over the declaration list:

 1. Reservation: every name mentioned as an input, bottom or top is
    collected. Generated names never collide with this set.

 2. Validation: the input and input-shape counts must agree and every layer
    must carry a supported type tag. Nothing is created if this fails.

 3. Inputs: one data node per declared input, with its shape set.

 4. Layers, in declaration order: a computation node is created, each bottom
    is resolved through the alias map to the live data node and wired as an
    input, and each top becomes a new data node wired as an output.

    A top that names a data node which already exists is an in-place write.
    It is given a fresh name "<top>_<n>" and the alias map is updated so
    later bottoms naming <top> read the new node. Layers already wired to the
    old node keep it.

 5. Seal: entry and exit nodes are computed and the graph is checked to be
    acyclic.

Any failure returns a nil graph together with a *ConfigError,
*UnsupportedLayerError or *ReferenceError.
*/
package builder
