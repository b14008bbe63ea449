package cascade

import (
	"github.com/zhuyadong/libcss/bytecode"
	"github.com/zhuyadong/libcss/intern"
)

// Aural properties.

// azimuth

func cascadeAzimuth(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrLength(opv, cur, state, AzimuthAngle,
		(*ComputedStyle).SetAzimuth)
}

func setAzimuthFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetAzimuth(hint.Status, hint.Length, hint.Unit)
}

func initialAzimuth(state *State) error {
	return state.Result.SetAzimuth(AzimuthCenter, 0, UnitDeg)
}

func composeAzimuth(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetAzimuth, (*ComputedStyle).SetAzimuth)
}

// elevation

func cascadeElevation(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrLength(opv, cur, state, ElevationAngle,
		(*ComputedStyle).SetElevation)
}

func setElevationFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetElevation(hint.Status, hint.Length, hint.Unit)
}

func initialElevation(state *State) error {
	return state.Result.SetElevation(ElevationLevel, 0, UnitDeg)
}

func composeElevation(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetElevation, (*ComputedStyle).SetElevation)
}

// pitch

func cascadePitch(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrLength(opv, cur, state, PitchFrequency,
		(*ComputedStyle).SetPitch)
}

func setPitchFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPitch(hint.Status, hint.Length, hint.Unit)
}

func initialPitch(state *State) error {
	return state.Result.SetPitch(PitchMedium, 0, UnitHz)
}

func composePitch(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPitch, (*ComputedStyle).SetPitch)
}

// pause-after, pause-before

func cascadePauseAfter(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetPauseAfter)
}

func setPauseAfterFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPauseAfter(hint.Status, hint.Length, hint.Unit)
}

func initialPauseAfter(state *State) error {
	return state.Result.SetPauseAfter(LengthSet, 0, UnitS)
}

func composePauseAfter(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPauseAfter, (*ComputedStyle).SetPauseAfter)
}

func cascadePauseBefore(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeLength(opv, cur, state, (*ComputedStyle).SetPauseBefore)
}

func setPauseBeforeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPauseBefore(hint.Status, hint.Length, hint.Unit)
}

func initialPauseBefore(state *State) error {
	return state.Result.SetPauseBefore(LengthSet, 0, UnitS)
}

func composePauseBefore(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetPauseBefore, (*ComputedStyle).SetPauseBefore)
}

// pitch-range, richness, stress

func cascadePitchRange(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeNumber(opv, cur, state, (*ComputedStyle).SetPitchRange)
}

func setPitchRangeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPitchRange(hint.Status, hint.Integer)
}

func initialPitchRange(state *State) error {
	return state.Result.SetPitchRange(NumberSet, bytecode.FixedFromInt(50))
}

func composePitchRange(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetPitchRange, (*ComputedStyle).SetPitchRange)
}

func cascadeRichness(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeNumber(opv, cur, state, (*ComputedStyle).SetRichness)
}

func setRichnessFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetRichness(hint.Status, hint.Integer)
}

func initialRichness(state *State) error {
	return state.Result.SetRichness(NumberSet, bytecode.FixedFromInt(50))
}

func composeRichness(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetRichness, (*ComputedStyle).SetRichness)
}

func cascadeStress(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeNumber(opv, cur, state, (*ComputedStyle).SetStress)
}

func setStressFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetStress(hint.Status, hint.Integer)
}

func initialStress(state *State) error {
	return state.Result.SetStress(NumberSet, bytecode.FixedFromInt(50))
}

func composeStress(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetStress, (*ComputedStyle).SetStress)
}

// speech-rate

func cascadeSpeechRate(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeKeywordOrNumber(opv, cur, state, SpeechRateSet,
		(*ComputedStyle).SetSpeechRate)
}

func setSpeechRateFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetSpeechRate(hint.Status, hint.Integer)
}

func initialSpeechRate(state *State) error {
	return state.Result.SetSpeechRate(SpeechRateMedium, 0)
}

func composeSpeechRate(parent, child, result *ComputedStyle) error {
	return composeNumber(parent, child, result,
		(*ComputedStyle).GetSpeechRate, (*ComputedStyle).SetSpeechRate)
}

// volume

func cascadeVolume(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := VolumeInherit
	var num bytecode.Fixed
	unit := bytecode.UnitPx

	if !opv.Inherit() {
		switch opv.Value() {
		case bytecode.VolumeNumber:
			value = VolumeNumber
			num = cur.ReadFixed()
		case bytecode.VolumeDimension:
			value = VolumePct
			num = cur.ReadFixed()
			unit = cur.ReadUnit()
		default:
			value = enumState(opv.Value())
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetVolume(value, num, UnitFromBytecode(unit))
	}
	return nil
}

func setVolumeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetVolume(hint.Status, hint.Length, hint.Unit)
}

func initialVolume(state *State) error {
	return state.Result.SetVolume(VolumeMedium, 0, UnitPx)
}

func composeVolume(parent, child, result *ComputedStyle) error {
	return composeLength(parent, child, result,
		(*ComputedStyle).GetVolume, (*ComputedStyle).SetVolume)
}

// play-during

func cascadePlayDuring(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	value := uint8(0)
	var uri *intern.String

	if !opv.Inherit() {
		value = enumState(opv.Value())
		if opv.Value()&bytecode.PlayDuringURI != 0 {
			uri = cur.ReadString()
		}
	}

	if outranksExisting(opv.Opcode(), opv.Important(), state, opv.Inherit()) {
		return state.Result.SetPlayDuring(value, uri)
	}
	return nil
}

func setPlayDuringFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetPlayDuring(hint.Status, hint.String)
}

func initialPlayDuring(state *State) error {
	return state.Result.SetPlayDuring(enumState(bytecode.PlayDuringAuto), nil)
}

func composePlayDuring(parent, child, result *ComputedStyle) error {
	return composeURI(parent, child, result,
		(*ComputedStyle).GetPlayDuring, (*ComputedStyle).SetPlayDuring)
}

// cue-after, cue-before

func cascadeCueAfter(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeURINone(opv, cur, state, (*ComputedStyle).SetCueAfter)
}

func setCueAfterFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetCueAfter(hint.Status, hint.String)
}

func initialCueAfter(state *State) error {
	return state.Result.SetCueAfter(URINone, nil)
}

func composeCueAfter(parent, child, result *ComputedStyle) error {
	return composeURI(parent, child, result,
		(*ComputedStyle).GetCueAfter, (*ComputedStyle).SetCueAfter)
}

func cascadeCueBefore(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeURINone(opv, cur, state, (*ComputedStyle).SetCueBefore)
}

func setCueBeforeFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetCueBefore(hint.Status, hint.String)
}

func initialCueBefore(state *State) error {
	return state.Result.SetCueBefore(URINone, nil)
}

func composeCueBefore(parent, child, result *ComputedStyle) error {
	return composeURI(parent, child, result,
		(*ComputedStyle).GetCueBefore, (*ComputedStyle).SetCueBefore)
}

// speak family

func cascadeSpeak(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetSpeak)
}

func setSpeakFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetSpeak(hint.Status)
}

func initialSpeak(state *State) error {
	return state.Result.SetSpeak(enumState(bytecode.SpeakNormal))
}

func composeSpeak(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetSpeak, (*ComputedStyle).SetSpeak)
}

func cascadeSpeakHeader(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetSpeakHeader)
}

func setSpeakHeaderFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetSpeakHeader(hint.Status)
}

func initialSpeakHeader(state *State) error {
	return state.Result.SetSpeakHeader(enumState(bytecode.SpeakHeaderOnce))
}

func composeSpeakHeader(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetSpeakHeader, (*ComputedStyle).SetSpeakHeader)
}

func cascadeSpeakNumeral(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetSpeakNumeral)
}

func setSpeakNumeralFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetSpeakNumeral(hint.Status)
}

func initialSpeakNumeral(state *State) error {
	return state.Result.SetSpeakNumeral(enumState(bytecode.SpeakNumeralContinuous))
}

func composeSpeakNumeral(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetSpeakNumeral, (*ComputedStyle).SetSpeakNumeral)
}

func cascadeSpeakPunctuation(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeEnum(opv, state, (*ComputedStyle).SetSpeakPunctuation)
}

func setSpeakPunctuationFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetSpeakPunctuation(hint.Status)
}

func initialSpeakPunctuation(state *State) error {
	return state.Result.SetSpeakPunctuation(enumState(bytecode.SpeakPunctuationNone))
}

func composeSpeakPunctuation(parent, child, result *ComputedStyle) error {
	return composeEnum(parent, child, result,
		(*ComputedStyle).GetSpeakPunctuation, (*ComputedStyle).SetSpeakPunctuation)
}

// voice-family

func cascadeVoiceFamily(opv bytecode.OPV, cur *bytecode.Cursor, state *State) error {
	return cascadeFamilyList(opv, cur, state,
		bytecode.VoiceFamilyString, bytecode.VoiceFamilyIdentList,
		func(v uint16) uint8 {
			switch v {
			case bytecode.VoiceFamilyMale:
				return VoiceFamilyMale
			case bytecode.VoiceFamilyFemale:
				return VoiceFamilyFemale
			case bytecode.VoiceFamilyChild:
				return VoiceFamilyChild
			}
			return 0
		},
		VoiceFamilyNamed, (*ComputedStyle).SetVoiceFamily)
}

func setVoiceFamilyFromHint(hint *Hint, style *ComputedStyle) error {
	return style.SetVoiceFamily(hint.Status, hint.Strings)
}

func initialVoiceFamily(state *State) error {
	return state.Result.SetVoiceFamily(VoiceFamilyNamed, nil)
}

func composeVoiceFamily(parent, child, result *ComputedStyle) error {
	return composeStrings(parent, child, result,
		(*ComputedStyle).GetVoiceFamily, (*ComputedStyle).SetVoiceFamily)
}
