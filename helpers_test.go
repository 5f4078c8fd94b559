package quikka

import (
	"bytes"
	"encoding/binary"
)

// buildWav returns a canonical PCM WAV file holding data.
func buildWav(numChans, sampleRate, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := numChans * bitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(numChans))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// stereo16 builds a 16-bit stereo file whose frames count up from 1.
func stereo16(frames int) []byte {
	data := make([]byte, 0, frames*4)
	for i := range frames {
		data = binary.LittleEndian.AppendUint16(data, uint16(i+1))
		data = binary.LittleEndian.AppendUint16(data, uint16(-(i + 1)))
	}

	return buildWav(2, 44100, 16, data)
}

func seqBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}

	return out
}

func patch(b []byte, off int, with []byte) []byte {
	out := append([]byte(nil), b...)
	copy(out[off:], with)

	return out
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func le16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}
