// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bytewords

// All 256 four-letter words, in byte order. The first and last letters of every
// word form a unique two-letter code, which is what the minimal style uses
const wordList = "ableacidalsoapexaquaarchatomauntawayaxisbackbaldbarnbeltbetabiasbluebodybragbrewbulbbuzzcalmcashcatschefcityclawcodecolacookcostcruxcurlcuspcyandarkdatadaysdelidicedietdoordowndrawdropdrumdulldutyeacheasyechoedgeepicevenexamexiteyesfactfairfernfigsfilmfishfizzflapflewfluxfoxyfreefrogfuelfundgalagamegeargemsgiftgirlglowgoodgraygrimgurugushgyrohalfhanghardhawkheathelphighhillholyhopehornhutsicedideaidleinchinkyintoirisironitemjadejazzjoinjoltjowljudojugsjumpjunkjurykeepkenokeptkeyskickkilnkingkitekiwiknoblamblavalazyleaflegsliarlimplionlistlogoloudloveluaulucklungmainmanymathmazememomenumeowmildmintmissmonknailnavyneednewsnextnoonnotenumbobeyoboeomitonyxopenovalowlspaidpartpeckplaypluspoempoolposepuffpumapurrquadquizraceramprealredorichroadrockroofrubyruinrunsrustsafesagascarsetssilkskewslotsoapsolosongstubsurfswantacotasktaxitenttiedtimetinytoiltombtoystriptunatwinuglyundouniturgeuservastveryvetovialvibeviewvisavoidvowswallwandwarmwaspwavewaxywebswhatwhenwhizwolfworkyankyawnyellyogayurtzapszerozestzinczonezoom"

const (
	wordLen      = 4
	minimalLen   = 2
	lookupRadix  = 26
	lookupUnused = -1
)

var (
	words        [256]string
	minimalWords [256]string
	// Maps (first letter, last letter) to the byte value
	wordLookup [lookupRadix * lookupRadix]int16
)

func init() {
	for i := range wordLookup {
		wordLookup[i] = lookupUnused
	}
	for i := range 256 {
		word := wordList[i*wordLen : (i+1)*wordLen]
		words[i] = word
		minimalWords[i] = string([]byte{word[0], word[wordLen-1]})
		wordLookup[lookupKey(word[0], word[wordLen-1])] = int16(i)
	}
}

func lookupKey(first, last byte) int {
	return int(first-'a')*lookupRadix + int(last-'a')
}

// lookup returns the byte value for a two-letter code, or false if the code is not
// in the dictionary
func lookup(first, last byte) (byte, bool) {
	if first < 'a' || first > 'z' || last < 'a' || last > 'z' {
		return 0, false
	}
	val := wordLookup[lookupKey(first, last)]
	if val == lookupUnused {
		return 0, false
	}
	return byte(val), true
}
